package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"golang.org/x/text/language"

	"ssmlc/common"
	"ssmlc/config"
	"ssmlc/content"
	"ssmlc/ssml"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	ID         string
	Digest     string
	SourceFile string
	Format     string
	Language   string
	Voices     []string
	Sentences  int
}

// buildVoices returns distinct names of voice elements in document order.
func buildVoices(root *ssml.Element) []string {
	var voices []string
	ssml.Walk(root, func(n ssml.Node) bool {
		el, ok := n.(*ssml.Element)
		if !ok || el.Name != "voice" {
			return true
		}
		if name, ok := el.Attr("name"); ok && name != "" && !slices.Contains(voices, name) {
			voices = append(voices, name)
		}
		return true
	})
	return voices
}

func buildLanguage(c *content.Content) string {
	if c.Lang == language.Und {
		return ""
	}
	return c.Lang.String()
}

func expandTemplate(c *content.Content, name config.TemplateFieldName, field string, format common.OutputFmt) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		ID:         c.ID.String(),
		Digest:     c.Digest,
		SourceFile: strings.TrimSuffix(filepath.Base(c.SrcName), filepath.Ext(c.SrcName)),
		Format:     format.String(),
		Language:   buildLanguage(c),
		Voices:     buildVoices(c.Root),
		Sentences:  len(c.Sentences),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
