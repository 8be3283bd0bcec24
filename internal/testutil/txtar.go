// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for configen.
package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/configen/generator"
	"github.com/albertocavalcante/configen/internal/source"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Flags contains any flags parsed from "Flags: ..." line in the description.
	Flags []string

	// HintsName and Hints are the mapping file ("hints" or "hints.<ext>").
	HintsName string
	Hints     []byte

	// ValuesName and Values are the values file ("values.<ext>").
	ValuesName string
	Values     []byte

	// Want maps output file names (e.g., "AppConfig.h") to expected content.
	Want map[string][]byte

	// WantErr, when set, is a substring the generation error must contain.
	WantErr string
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - A "hints" or "hints.<ext>" mapping file
//   - A "values.<ext>" values file
//   - One or more "want/<filename>" files with expected output, or an
//     "error" file holding a substring of the expected error
//
// The description may contain a "Flags: key=value, key=value" line to
// configure the generator.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
	}

	// Parse flags from description
	c.parseFlags()

	// Process files
	for _, f := range ar.Files {
		switch {
		case f.Name == "hints" || strings.HasPrefix(f.Name, "hints."):
			c.HintsName, c.Hints = f.Name, f.Data
		case strings.HasPrefix(f.Name, "values."):
			c.ValuesName, c.Values = f.Name, f.Data
		case f.Name == "error":
			c.WantErr = strings.TrimSpace(string(f.Data))
		case strings.HasPrefix(f.Name, "want/"):
			relPath := strings.TrimPrefix(f.Name, "want/")
			c.Want[relPath] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected hints, values.*, error or want/*)", f.Name)
		}
	}

	if c.HintsName == "" {
		return nil, fmt.Errorf("missing hints file in archive")
	}
	if c.ValuesName == "" {
		return nil, fmt.Errorf("missing values.* file in archive")
	}
	if len(c.Want) == 0 && c.WantErr == "" {
		return nil, fmt.Errorf("missing want/* or error file in archive")
	}

	return c, nil
}

// parseFlags extracts flags from "Flags: ..." line in the description.
func (c *Case) parseFlags() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		flagStr, ok := strings.CutPrefix(line, "Flags:")
		if !ok {
			continue
		}
		for _, f := range strings.Split(flagStr, ",") {
			if f = strings.TrimSpace(f); f != "" {
				c.Flags = append(c.Flags, f)
			}
		}
		break
	}
}

// GenerateFunc generates output files from a case's inputs.
// It returns a map of filename to content.
type GenerateFunc func(c *Case) (map[string][]byte, error)

// Run executes the test case using the provided generate function.
// It compares generated output against expected output and reports differences.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c)
	if c.WantErr != "" {
		if err == nil {
			t.Fatalf("generate succeeded, want error containing %q", c.WantErr)
		}
		if !strings.Contains(err.Error(), c.WantErr) {
			t.Fatalf("generate error = %q, want it to contain %q", err.Error(), c.WantErr)
		}
		if len(got) != 0 {
			t.Errorf("generate returned %d files alongside an error", len(got))
		}
		return
	}
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// Check for missing expected files
	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	// Check for unexpected files
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	// Compare contents
	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		// Normalize line endings and trailing whitespace
		wantNorm := NormalizeContent(wantContent)
		gotNorm := NormalizeContent(gotContent)

		if diff := cmp.Diff(wantNorm, gotNorm); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// NormalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func NormalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// Generator returns a GenerateFunc that parses the case inputs, resolves
// them and runs g. Recognized flags:
//
//	class=Name           generated class name (default AppConfig)
//	import=Module        additional import, may repeat
//	option.key=value     target-specific option
func Generator(g generator.Generator) GenerateFunc {
	return func(c *Case) (map[string][]byte, error) {
		hints, err := source.ParseHints(c.HintsName, c.Hints)
		if err != nil {
			return nil, err
		}
		values, err := source.ParseValues(c.ValuesName, c.Values)
		if err != nil {
			return nil, err
		}
		settings, err := generator.Resolve(hints, values)
		if err != nil {
			return nil, err
		}

		cfg := generator.Config{
			ClassName: "AppConfig",
			HintsPath: c.HintsName,
			Options:   make(map[string]string),
		}
		for _, f := range c.Flags {
			key, val, _ := strings.Cut(f, "=")
			switch {
			case key == "class":
				cfg.ClassName = val
			case key == "import":
				cfg.Imports = append(cfg.Imports, val)
			case strings.HasPrefix(key, "option."):
				cfg.Options[strings.TrimPrefix(key, "option.")] = val
			}
		}

		out, err := g.Generate(context.Background(), settings, cfg)
		if err != nil {
			return nil, err
		}
		return out.Files, nil
	}
}

// UpdateArchive updates a txtar archive with new generated content.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	// Keep comment and inputs
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if !strings.HasPrefix(f.Name, "want/") {
			result.Files = append(result.Files, f)
		}
	}

	// Add want/* files in sorted order for determinism
	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		// Ensure trailing newline
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, c)
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}

// StripBanner removes the auto-generated banner from generated code so
// tests can compare just the meaningful code.
func StripBanner(content []byte) []byte {
	lines := strings.Split(string(content), "\n")
	i := 0
	for i < len(lines) && (strings.HasPrefix(lines[i], "//") || lines[i] == "") {
		i++
	}
	return []byte(strings.Join(lines[i:], "\n"))
}
