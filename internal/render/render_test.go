// SPDX-License-Identifier: MIT

package render

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/configen/internal/token"
	"github.com/albertocavalcante/configen/model"
)

// testTemplate mirrors the shape of the real targets with short snippets.
var testTemplate = Template{
	Declarations: &Declarations{
		Extension: ".h",
		Imports:   "#include <base>\n",
		Body:      "begin" + token.Body + "end\n",
		Double:    "double " + token.VariableName,
		Int:       "int " + token.VariableName,
		String:    "string " + token.VariableName,
		Bool:      "bool " + token.VariableName,
		URL:       "url " + token.VariableName,
		Custom:    token.CustomType + " " + token.VariableName,
	},
	Implementations: Implementations{
		Extension:        ".impl",
		Imports:          "use base",
		AdditionalImport: "use " + token.AdditionalImport,
		Body:             "\nbegin" + token.Body + "end\n",
		Double:           token.VariableName + " double = " + token.Value,
		Int:              token.VariableName + " int = " + token.Value,
		String:           token.VariableName + ` string = "` + token.Value + `"`,
		Bool:             token.VariableName + " bool = " + token.Value,
		URL:              token.VariableName + ` url = URL("` + token.Value + `")`,
		Custom:           token.VariableName + " " + token.CustomType + " = " + token.Value,
		True:             "YES",
		False:            "NO",
		Array:            "Array<" + token.CustomType + ">(arrayLiteral: " + token.Value + ")",
	},
}

func setting(name, typ string, v model.Value) model.Setting {
	return model.Setting{Hint: model.Hint{VariableName: name, Type: typ}, Value: v}
}

func TestBanner(t *testing.T) {
	want := "// auto-generated by configen\n" +
		"// to add or remove properties, edit the mapping file: 'Config/hints.map'.\n" +
		"// README: " + ReadmeURL + "\n\n"
	if diff := cmp.Diff(want, Banner("configen", "Config/hints.map")); diff != "" {
		t.Errorf("Banner() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclaration(t *testing.T) {
	tests := []struct {
		typ      string
		expected string
	}{
		{typ: "Double", expected: "double x"},
		{typ: "Int", expected: "int x"},
		{typ: "String", expected: "string x"},
		{typ: "Bool", expected: "bool x"},
		{typ: "URL", expected: "url x"},
		{typ: "[String]", expected: "[String] x"},
		{typ: "UIColor", expected: "UIColor x"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			got := Declaration(model.Hint{VariableName: "x", Type: tt.typ}, testTemplate.Declarations)
			if got != tt.expected {
				t.Errorf("Declaration() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestImplementation(t *testing.T) {
	tests := []struct {
		name     string
		setting  model.Setting
		expected string
		wantErr  error
	}{
		{
			name:     "double passes text through",
			setting:  setting("ratio", "Double", model.Number("0.75")),
			expected: "ratio double = 0.75",
		},
		{
			name:     "int passes text through",
			setting:  setting("retries", "Int", model.Number("3")),
			expected: "retries int = 3",
		},
		{
			name:     "int without numeric validation",
			setting:  setting("retries", "Int", model.Text("three")),
			expected: "retries int = three",
		},
		{
			name:     "string is quoted, not escaped",
			setting:  setting("greeting", "String", model.Text(`say "hi"`)),
			expected: `greeting string = "say "hi""`,
		},
		{
			name:     "bool true",
			setting:  setting("enabled", "Bool", model.Bool(true)),
			expected: "enabled bool = YES",
		},
		{
			name:     "bool false",
			setting:  setting("enabled", "Bool", model.Bool(false)),
			expected: "enabled bool = NO",
		},
		{
			name:    "bool from text",
			setting: setting("enabled", "Bool", model.Text("true")),
			wantErr: model.ErrTypeMismatch,
		},
		{
			name:    "bool from number",
			setting: setting("enabled", "Bool", model.Number("1")),
			wantErr: model.ErrTypeMismatch,
		},
		{
			name:     "url with host",
			setting:  setting("endpoint", "URL", model.Text("https://example.com/path")),
			expected: `endpoint url = URL("https://example.com/path")`,
		},
		{
			name:    "url without host",
			setting: setting("endpoint", "URL", model.Text("not-a-url")),
			wantErr: model.ErrMalformedURL,
		},
		{
			name:    "url with port but no host",
			setting: setting("endpoint", "URL", model.Text("https://:8080/path")),
			wantErr: model.ErrMalformedURL,
		},
		{
			name:     "url with host and port",
			setting:  setting("endpoint", "URL", model.Text("http://localhost:8080/api")),
			expected: `endpoint url = URL("http://localhost:8080/api")`,
		},
		{
			name:    "url from list",
			setting: setting("endpoint", "URL", model.List("https://example.com")),
			wantErr: model.ErrTypeMismatch,
		},
		{
			name:    "url from number",
			setting: setting("endpoint", "URL", model.Number("42")),
			wantErr: model.ErrTypeMismatch,
		},
		{
			name:    "url from bool",
			setting: setting("endpoint", "URL", model.Bool(true)),
			wantErr: model.ErrTypeMismatch,
		},
		{
			name:    "url that does not parse",
			setting: setting("endpoint", "URL", model.Text("http://[::1")),
			wantErr: model.ErrMalformedURL,
		},
		{
			name:     "array of strings",
			setting:  setting("names", "[String]", model.List("a", "b")),
			expected: "names [String] = Array<String>(arrayLiteral: a, b)",
		},
		{
			name:     "array elements are opaque",
			setting:  setting("ids", "[int]", model.List(`"1"`, "two")),
			expected: `ids [int] = Array<int>(arrayLiteral: "1", two)`,
		},
		{
			name:    "array from text",
			setting: setting("names", "[String]", model.Text("a, b")),
			wantErr: model.ErrTypeMismatch,
		},
		{
			name:     "custom type",
			setting:  setting("thing", "Foo", model.Text("bar")),
			expected: "thing Foo = bar",
		},
		{
			name:    "custom type from number",
			setting: setting("thing", "Foo", model.Number("1")),
			wantErr: model.ErrTypeMismatch,
		},
		{
			name:     "value containing a token is not expanded",
			setting:  setting("raw", "String", model.Text(token.VariableName)),
			expected: `raw string = "` + token.VariableName + `"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Implementation(tt.setting, &testTemplate.Implementations)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Implementation() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Implementation() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Implementation() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestImplementation_ErrorNamesSetting(t *testing.T) {
	_, err := Implementation(setting("endpoint", "URL", model.Text("not-a-url")), &testTemplate.Implementations)
	if err == nil || !strings.Contains(err.Error(), "endpoint") {
		t.Errorf("error %v does not name the setting", err)
	}

	_, err = Implementation(setting("endpoint", "URL", model.Number("42")), &testTemplate.Implementations)
	if want := "value (42) must be a string in order to be used as a URL"; err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}

	_, err = Implementation(setting("thing", "Foo", model.Bool(true)), &testTemplate.Implementations)
	want := "value (true) must be a string in order to be used by custom type Foo"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestHeader(t *testing.T) {
	settings := []model.Setting{
		setting("a", "Int", model.Number("1")),
		setting("b", "Color", model.Text("red")),
	}

	got := string(Header(settings, testTemplate.Declarations, "// banner\n"))
	want := "// banner\n" +
		"#include <base>\n" +
		"begin\nint a;\n\nColor b;\nend\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Header() mismatch (-want +got):\n%s", diff)
	}
}

func TestSource(t *testing.T) {
	settings := []model.Setting{
		setting("a", "Int", model.Number("1")),
		setting("b", "Bool", model.Bool(false)),
	}

	t.Run("without imports", func(t *testing.T) {
		got, err := Source(settings, &testTemplate.Implementations, "// banner\n", nil)
		if err != nil {
			t.Fatalf("Source() error = %v", err)
		}
		want := "// banner\n" +
			"use base" +
			"\nbegin\na int = 1\n\nb bool = NO\nend\n"
		if diff := cmp.Diff(want, string(got)); diff != "" {
			t.Errorf("Source() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("with imports", func(t *testing.T) {
		got, err := Source(settings[:1], &testTemplate.Implementations, "", []string{"extra", "more"})
		if err != nil {
			t.Fatalf("Source() error = %v", err)
		}
		want := "use base\nuse extra\nuse more" +
			"\nbegin\na int = 1\nend\n"
		if diff := cmp.Diff(want, string(got)); diff != "" {
			t.Errorf("Source() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("stops at first failure", func(t *testing.T) {
		bad := append(settings, setting("c", "Bool", model.Text("nope")))
		got, err := Source(bad, &testTemplate.Implementations, "", nil)
		if !errors.Is(err, model.ErrTypeMismatch) {
			t.Fatalf("Source() error = %v, want type mismatch", err)
		}
		if got != nil {
			t.Errorf("Source() returned partial output %q", got)
		}
	})
}

func TestFiles(t *testing.T) {
	settings := []model.Setting{setting("a", "Int", model.Number("1"))}

	t.Run("declarations and implementations", func(t *testing.T) {
		files, err := Files(settings, testTemplate, "Config", "", nil)
		if err != nil {
			t.Fatalf("Files() error = %v", err)
		}
		if _, ok := files["Config.h"]; !ok {
			t.Error("missing Config.h")
		}
		if _, ok := files["Config.impl"]; !ok {
			t.Error("missing Config.impl")
		}
	})

	t.Run("implementation only", func(t *testing.T) {
		single := Template{Implementations: testTemplate.Implementations}
		files, err := Files(settings, single, "Config", "", nil)
		if err != nil {
			t.Fatalf("Files() error = %v", err)
		}
		if len(files) != 1 {
			t.Errorf("got %d files, want 1", len(files))
		}
	})

	t.Run("no files on failure", func(t *testing.T) {
		bad := []model.Setting{setting("apiBase", "URL", model.Text("not-a-url"))}
		files, err := Files(bad, testTemplate, "Config", "", nil)
		if err == nil {
			t.Fatal("expected error")
		}
		if files != nil {
			t.Errorf("Files() returned %d files on failure", len(files))
		}
	})
}
