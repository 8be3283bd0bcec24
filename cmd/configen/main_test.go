// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/configen/generator"
)

type inputs struct {
	dir    string
	hints  string
	values string
}

func writeInputs(t *testing.T) inputs {
	t.Helper()
	dir := t.TempDir()
	in := inputs{
		dir:    dir,
		hints:  filepath.Join(dir, "hints.map"),
		values: filepath.Join(dir, "values.yaml"),
	}
	require.NoError(t, os.WriteFile(in.hints, []byte("apiKey : String\nretries : Int\n"), 0o644))
	require.NoError(t, os.WriteFile(in.values, []byte("apiKey: abc\nretries: 3\n"), 0o644))
	return in
}

func execute(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	return executeOn(t, afero.NewOsFs(), args...)
}

func executeOn(t *testing.T, fs afero.Fs, args ...string) (stdout string, err error) {
	t.Helper()
	cmd := newRootCmd(fs)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	in := writeInputs(t)
	outDir := filepath.Join(in.dir, "Generated")

	_, err := execute(t, "generate",
		"--hints", in.hints, "--values", in.values,
		"--output-dir", outDir, "--template", "objc")
	require.NoError(t, err)

	header, err := os.ReadFile(filepath.Join(outDir, "AppConfig.h"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "+ (NSString *)apiKey;")

	impl, err := os.ReadFile(filepath.Join(outDir, "AppConfig.m"))
	require.NoError(t, err)
	assert.Contains(t, string(impl), "return @3;")
}

func TestGenerate_InMemory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/hints.map", []byte("timeout : Double\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/proj/values.json", []byte(`{"timeout": 1.5}`), 0o644))

	_, err := executeOn(t, fs, "generate",
		"--hints", "/proj/hints.map", "--values", "/proj/values.json", "-o", "/proj/Generated")
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "/proj/Generated/AppConfig.swift")
	require.NoError(t, err)
	assert.Contains(t, string(got), "static let timeout: Double = 1.5")

	_, err = executeOn(t, fs, "check",
		"--hints", "/proj/hints.map", "--values", "/proj/values.json", "-o", "/proj/Generated")
	require.NoError(t, err)
}

func TestGenerate_DefaultsToSwift(t *testing.T) {
	in := writeInputs(t)

	_, err := execute(t, "generate",
		"--hints", in.hints, "--values", in.values,
		"-o", in.dir, "--option", "keyword=enum", "--import", "UIKit")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(in.dir, "AppConfig.swift"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "import UIKit")
	assert.Contains(t, string(got), "enum AppConfig {")
	assert.Contains(t, string(got), "  static let retries: Int = 3")
}

func TestGenerate_DryRun(t *testing.T) {
	in := writeInputs(t)

	stdout, err := execute(t, "generate", "--dry-run",
		"--hints", in.hints, "--values", in.values, "-o", in.dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "==> AppConfig.swift <==")
	assert.Contains(t, stdout, `static let apiKey: String = "abc"`)

	_, err = os.Stat(filepath.Join(in.dir, "AppConfig.swift"))
	assert.True(t, os.IsNotExist(err), "dry run wrote a file")
}

func TestGenerate_EnvAndConfigFile(t *testing.T) {
	in := writeInputs(t)
	cfgPath := filepath.Join(in.dir, "configen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"hints: "+in.hints+"\n"+
			"values: "+in.values+"\n"+
			"output-dir: "+in.dir+"\n"+
			"class: FileConfig\n"+
			"template: objc\n"+
			"options:\n  superclass: BaseConfig\n"), 0o644))

	_, err := execute(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	header, err := os.ReadFile(filepath.Join(in.dir, "FileConfig.h"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "@interface FileConfig : BaseConfig")

	t.Setenv("CONFIGEN_CLASS", "EnvConfig")
	_, err = execute(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(in.dir, "EnvConfig.m"))

	_, err = execute(t, "generate", "--config", cfgPath, "--class", "FlagConfig")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(in.dir, "FlagConfig.m"))
}

func TestGenerate_MissingConfigFile(t *testing.T) {
	_, err := execute(t, "generate", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestGenerate_UnknownTemplate(t *testing.T) {
	in := writeInputs(t)

	_, err := execute(t, "generate", "--hints", in.hints, "--values", in.values, "-t", "kotlin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, generator.ErrUnknownTemplate))

	var buf bytes.Buffer
	printError(&buf, err)
	assert.Contains(t, buf.String(), `error: no template named "kotlin"`)
	assert.Contains(t, buf.String(), "hint: available templates: objc, swift")
}

func TestGenerate_FailureWritesNothing(t *testing.T) {
	in := writeInputs(t)
	require.NoError(t, os.WriteFile(in.hints, []byte("apiKey : String\nmissing : Int\n"), 0o644))
	outDir := filepath.Join(in.dir, "out")

	_, err := execute(t, "generate", "--hints", in.hints, "--values", in.values, "-o", outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no configuration setting for variable name: missing")

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCheck(t *testing.T) {
	in := writeInputs(t)
	args := []string{"--hints", in.hints, "--values", in.values, "-o", in.dir}

	stdout, err := execute(t, append([]string{"check"}, args...)...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStale))
	assert.Contains(t, stdout, "AppConfig.swift: missing")

	_, err = execute(t, append([]string{"generate"}, args...)...)
	require.NoError(t, err)
	_, err = execute(t, append([]string{"check"}, args...)...)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(in.values, []byte("apiKey: xyz\nretries: 3\n"), 0o644))
	stdout, err = execute(t, append([]string{"check"}, args...)...)
	require.Error(t, err)
	assert.Contains(t, stdout, "out of date")
	assert.Contains(t, stdout, "xyz")
}

func TestWatch_RequiresInputs(t *testing.T) {
	_, err := execute(t, "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no mapping file given")
}

func TestList(t *testing.T) {
	stdout, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "objc")
	assert.Contains(t, stdout, ".h .m")
	assert.Contains(t, stdout, "swift")
}

func TestVersion(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "configen dev (commit: unknown, built: unknown)\n", stdout)
}
