package ssml

// YAML representation keeps attribute order and duplicates, so attributes are
// a list of pairs rather than a mapping.

type yamlAttribute struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type yamlElement struct {
	Name       string          `yaml:"element"`
	Attributes []yamlAttribute `yaml:"attributes,omitempty"`
	Children   []any           `yaml:"children,omitempty"`
}

type yamlText struct {
	Text string `yaml:"text"`
}

// MarshalYAML implements yaml.Marshaler.
func (e *Element) MarshalYAML() (any, error) {
	out := yamlElement{Name: e.Name}
	for _, a := range e.Attributes {
		out.Attributes = append(out.Attributes, yamlAttribute{Name: a.Name, Value: a.Value})
	}
	for _, child := range e.Children {
		switch c := child.(type) {
		case *Element:
			out.Children = append(out.Children, c)
		case *Text:
			out.Children = append(out.Children, yamlText{Text: c.Content})
		}
	}
	return out, nil
}
