package convert

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"ssmlc/common"
	"ssmlc/content"
	"ssmlc/ssml"
)

// generate produces result of the requested format for prepared content.
func generate(c *content.Content) ([]byte, error) {
	switch c.OutputFormat {
	case common.OutputFmtTxt:
		return []byte(c.Text + "\n"), nil
	case common.OutputFmtSentences:
		var buf strings.Builder
		for _, s := range c.Sentences {
			buf.WriteString(strings.TrimSpace(s))
			buf.WriteByte('\n')
		}
		return []byte(buf.String()), nil
	case common.OutputFmtTree:
		return []byte(c.Root.String()), nil
	case common.OutputFmtSsml:
		out, err := ssml.Render(c.Root)
		if err != nil {
			return nil, fmt.Errorf("unable to render SSML: %w", err)
		}
		return []byte(out), nil
	case common.OutputFmtYaml:
		out, err := yaml.Marshal(c.Root)
		if err != nil {
			return nil, fmt.Errorf("unable to marshal tree: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported output format %s", c.OutputFormat)
}
