package ssml

import (
	"reflect"
	"testing"

	"github.com/beevik/etree"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   *Element
		want string
	}{
		{
			name: "text",
			in:   &Element{Name: "speak", Children: []Node{&Text{Content: "hi"}}},
			want: "<speak>hi</speak>",
		},
		{
			name: "empty element keeps end tag",
			in:   &Element{Name: "speak", Children: []Node{&Element{Name: "mark"}}},
			want: "<speak><mark></mark></speak>",
		},
		{
			name: "escaped text",
			in:   &Element{Name: "speak", Children: []Node{&Text{Content: "a < b & c"}}},
			want: "<speak>a &lt; b &amp; c</speak>",
		},
		{
			name: "carriage return kept",
			in:   &Element{Name: "speak", Children: []Node{&Text{Content: "a\r\nb"}}},
			want: "<speak>a\r\nb</speak>",
		},
		{
			name: "literal character reference",
			in:   &Element{Name: "speak", Children: []Node{&Text{Content: "&#xD;"}}},
			want: "<speak>&amp;#xD;</speak>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.in)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Nil(t *testing.T) {
	if _, err := Render(nil); err == nil {
		t.Error("Render(nil) expected error")
	}
}

func TestRender_RoundTrip(t *testing.T) {
	docs := []string{
		"<speak>hello</speak>",
		"<speak></speak>",
		`<speak version="1.0" xml:lang="en-US">Hi <voice name="x">there <emphasis level="strong">you</emphasis> now</voice>!</speak>`,
		"<speak>a &lt; b<p>b<p>c</p>d</p>e &amp; f</speak>",
		`<speak><p a="1" a="2">dup</p></speak>`,
		"<speak>a\r\nb</speak>",
		"<speak>line one\r\n<p>two\r</p>\r\nthree</speak>",
		"<speak>\tindented &amp;#xD; text</speak>",
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			first, err := Parse(doc)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			rendered, err := Render(first)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			second, err := Parse(rendered)
			if err != nil {
				t.Fatalf("Parse(Render()) error = %v, rendered %q", err, rendered)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("round trip mismatch, rendered %q\nfirst:\n%s\nsecond:\n%s", rendered, first, second)
			}
		})
	}
}

func TestRender_WellFormed(t *testing.T) {
	root, err := Parse(`<speak>Say <say-as interpret-as="characters">abc</say-as> &amp; more</speak>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	rendered, err := Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(rendered); err != nil {
		t.Fatalf("rendered markup is not well formed: %v", err)
	}
	if doc.Root() == nil || doc.Root().Tag != "speak" {
		t.Fatalf("unexpected root in %q", rendered)
	}
	sayAs := doc.Root().SelectElement("say-as")
	if sayAs == nil {
		t.Fatalf("say-as element lost in %q", rendered)
	}
	if got := sayAs.SelectAttrValue("interpret-as", ""); got != "characters" {
		t.Errorf("interpret-as = %q, want %q", got, "characters")
	}
}
