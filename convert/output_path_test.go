package convert

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/language"

	"ssmlc/common"
	"ssmlc/config"
	"ssmlc/content"
	"ssmlc/ssml"
	"ssmlc/state"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Document.FileNameTransliterate = transliterate
	cfg.Document.OutputNameTemplate = template

	return &state.LocalEnv{
		Log:    zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		Cfg:    cfg,
		NoDirs: noDirs,
	}
}

func setupTestContentForPath(t *testing.T, format common.OutputFmt) *content.Content {
	t.Helper()
	root := &ssml.Element{
		Name:       "speak",
		Attributes: []ssml.Attribute{{Name: "xml:lang", Value: "en-US"}},
		Children: []ssml.Node{
			&ssml.Element{Name: "voice", Attributes: []ssml.Attribute{{Name: "name", Value: "Joanna"}}, Children: []ssml.Node{&ssml.Text{Content: "Hello."}}},
		},
	}
	return &content.Content{
		ID:           uuid.MustParse("0192f1c4-7a5e-7cc0-8b1e-3f0c6a1d2e4f"),
		SrcName:      "prompts/welcome.ssml",
		OutputFormat: format,
		Digest:       "abc123",
		Root:         root,
		Lang:         language.AmericanEnglish,
		Text:         "Hello.",
		Sentences:    []string{"Hello."},
	}
}

func TestBuildOutputPath(t *testing.T) {
	tests := []struct {
		name          string
		noDirs        bool
		transliterate bool
		template      string
		format        common.OutputFmt
		src           string
		want          string
	}{
		{
			name:   "keeps directories",
			format: common.OutputFmtTxt,
			src:    filepath.Join("prompts", "welcome.ssml"),
			want:   filepath.Join("prompts", "welcome.txt"),
		},
		{
			name:   "no dirs",
			noDirs: true,
			format: common.OutputFmtTree,
			src:    filepath.Join("prompts", "welcome.ssml"),
			want:   "welcome.tree.txt",
		},
		{
			name:   "base name only",
			format: common.OutputFmtSentences,
			src:    "welcome.ssml",
			want:   "welcome.sentences.txt",
		},
		{
			name:          "transliterate",
			transliterate: true,
			format:        common.OutputFmtYaml,
			src:           "Привет мир.ssml",
			want:          "privet-mir.yaml",
		},
		{
			name:     "template",
			noDirs:   true,
			template: `{{ .Language }}/{{ first .Voices }}-{{ .SourceFile }}`,
			format:   common.OutputFmtSsml,
			src:      filepath.Join("prompts", "welcome.ssml"),
			want:     filepath.Join("en-US", "Joanna-welcome.ssml"),
		},
		{
			name:     "template under source directory",
			template: `{{ .Format }}/{{ .SourceFile }}`,
			format:   common.OutputFmtTxt,
			src:      filepath.Join("prompts", "welcome.ssml"),
			want:     filepath.Join("prompts", "txt", "welcome.txt"),
		},
		{
			name:     "template cannot escape destination",
			noDirs:   true,
			template: `../../{{ .SourceFile }}`,
			format:   common.OutputFmtTxt,
			src:      "welcome.ssml",
			want:     "welcome.txt",
		},
		{
			name:     "broken template falls back to default",
			noDirs:   true,
			template: `{{ .Missing`,
			format:   common.OutputFmtTxt,
			src:      "welcome.ssml",
			want:     "welcome.txt",
		},
		{
			name:     "empty expansion",
			noDirs:   true,
			template: `{{ "" }}`,
			format:   common.OutputFmtTxt,
			src:      "welcome.ssml",
			want:     "welcome.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, tt.noDirs, tt.transliterate, tt.template)
			c := setupTestContentForPath(t, tt.format)
			if got := buildOutputPath(c, tt.src, env); got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitAndCleanPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a/b/c", []string{"a", "b", "c"}},
		{"/a//b/", []string{"a", "b"}},
		{"./a/../b", []string{"a", "b"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		got := splitAndCleanPath(filepath.FromSlash(tt.in))
		if len(got) != len(tt.want) {
			t.Errorf("splitAndCleanPath(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitAndCleanPath(%q) = %q, want %q", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestCleanPathSegment(t *testing.T) {
	env := setupTestEnvForOutputPath(t, false, false, "")
	if got := cleanPathSegment("..hidden", env); got != "hidden" {
		t.Errorf("cleanPathSegment() = %q, want %q", got, "hidden")
	}
	if got := cleanPathSegment("", env); got != "_bad_file_name_" {
		t.Errorf("cleanPathSegment() = %q, want %q", got, "_bad_file_name_")
	}

	env.Cfg.Document.FileNameTransliterate = true
	if got := cleanPathSegment("Hello World", env); got != "hello-world" {
		t.Errorf("cleanPathSegment() = %q, want %q", got, "hello-world")
	}
}
