// Package ssml parses the constrained subset of Speech Synthesis Markup
// Language used by our synthesis pipelines: a single <speak> root holding
// nested elements with optional attributes and text. Parsed documents can be
// flattened back into the plain utterance text.
package ssml

// RootName is the name of the only element allowed at the document root.
const RootName = "speak"

// Node is either *Element or *Text. Use a type switch to tell them apart.
type Node interface {
	isNode()
}

// Element is a markup element. Children are kept in document order.
type Element struct {
	Name       string
	Attributes []Attribute
	Children   []Node
}

// Text holds character data with entity references already resolved.
type Text struct {
	Content string
}

// Attribute is a single name="value" pair of an opening tag. Element keeps
// attributes as an ordered list, duplicate names are allowed.
type Attribute struct {
	Name  string
	Value string
}

func (*Element) isNode() {}
func (*Text) isNode()    {}

// Attr returns value of the first attribute with the given name.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ChildElements returns element children skipping text.
func (e *Element) ChildElements() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}
