package convert

import (
	"reflect"
	"regexp"
	"slices"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"ssmlc/common"
	"ssmlc/config"
	"ssmlc/ssml"
)

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		format   common.OutputFmt
		want     string
	}{
		{"context", `{{ .Context }}`, common.OutputFmtTxt, string(config.OutputNameTemplateFieldName)},
		{"id", `{{ .ID }}`, common.OutputFmtTxt, "0192f1c4-7a5e-7cc0-8b1e-3f0c6a1d2e4f"},
		{"digest", `{{ .Digest }}`, common.OutputFmtTxt, "abc123"},
		{"source file", `{{ .SourceFile }}`, common.OutputFmtTxt, "welcome"},
		{"format", `{{ .Format }}`, common.OutputFmtSentences, "sentences"},
		{"language", `{{ .Language }}`, common.OutputFmtTxt, "en-US"},
		{"voices", `{{ join "+" .Voices }}`, common.OutputFmtTxt, "Joanna"},
		{"sentences", `{{ .Sentences }}`, common.OutputFmtTxt, "1"},
		{"sprig", `{{ .SourceFile | upper }}-{{ .Format | repeat 2 }}`, common.OutputFmtYaml, "WELCOME-yamlyaml"},
		{"conditional", `{{ if .Voices }}voiced{{ else }}plain{{ end }}`, common.OutputFmtTxt, "voiced"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setupTestContentForPath(t, tt.format)
			got, err := expandTemplate(c, config.OutputNameTemplateFieldName, tt.template, tt.format)
			if err != nil {
				t.Fatalf("expandTemplate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTemplate_Errors(t *testing.T) {
	c := setupTestContentForPath(t, common.OutputFmtTxt)

	_, err := expandTemplate(c, config.OutputNameTemplateFieldName, `{{ .SourceFile`, common.OutputFmtTxt)
	if err == nil || !strings.Contains(err.Error(), "unable to parse template field") {
		t.Errorf("expected parse error, got %v", err)
	}

	if _, err := expandTemplate(c, config.OutputNameTemplateFieldName, `{{ .NoSuchField }}`, common.OutputFmtTxt); err == nil {
		t.Error("expected execution error for unknown field")
	}
}

func TestExpandTemplate_UndeterminedLanguage(t *testing.T) {
	c := setupTestContentForPath(t, common.OutputFmtTxt)
	c.Lang = language.Und

	got, err := expandTemplate(c, config.OutputNameTemplateFieldName, `[{{ .Language }}]`, common.OutputFmtTxt)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if got != "[]" {
		t.Errorf("expandTemplate() = %q, want %q", got, "[]")
	}
}

func TestBuildVoices(t *testing.T) {
	voice := func(name string, children ...ssml.Node) *ssml.Element {
		el := &ssml.Element{Name: "voice", Children: children}
		if name != "" {
			el.Attributes = []ssml.Attribute{{Name: "name", Value: name}}
		}
		return el
	}
	root := &ssml.Element{Name: "speak", Children: []ssml.Node{
		voice("b", voice("a")),
		&ssml.Text{Content: "x"},
		voice("b"),
		voice(""),
		&ssml.Element{Name: "say-as", Attributes: []ssml.Attribute{{Name: "name", Value: "ignored"}}},
	}}

	want := []string{"b", "a"}
	if got := buildVoices(root); !slices.Equal(got, want) {
		t.Errorf("buildVoices() = %v, want %v", got, want)
	}
	if got := buildVoices(&ssml.Element{Name: "speak"}); len(got) != 0 {
		t.Errorf("buildVoices() = %v, want none", got)
	}
}

// Values listed in configuration template comment must match what expansion
// actually provides.
func TestExpandTemplate_DocumentedValues(t *testing.T) {
	tmpl := string(config.ConfigTmpl)
	start := strings.Index(tmpl, "Go template for output file names")
	end := strings.Index(tmpl, "output_name_template:")
	if start < 0 || end < start {
		t.Fatal("output_name_template description not found in configuration template")
	}

	var documented []string
	for _, m := range regexp.MustCompile(`(?m)^\s*#\s+\.([A-Z][A-Za-z]*)\s`).FindAllStringSubmatch(tmpl[start:end], -1) {
		documented = append(documented, m[1])
	}

	var fields []string
	vt := reflect.TypeFor[Values]()
	for i := range vt.NumField() {
		fields = append(fields, vt.Field(i).Name)
	}

	slices.Sort(documented)
	slices.Sort(fields)
	if !slices.Equal(documented, fields) {
		t.Errorf("documented values %v, available %v", documented, fields)
	}

	c := setupTestContentForPath(t, common.OutputFmtSentences)
	for _, name := range documented {
		if _, err := expandTemplate(c, config.OutputNameTemplateFieldName, "{{ ."+name+" }}", common.OutputFmtSentences); err != nil {
			t.Errorf("documented value %s: %v", name, err)
		}
	}
}
