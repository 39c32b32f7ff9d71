package ssml

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

// Render writes the tree back as markup. End tags are always produced (the
// parser does not accept self-closing tags) and only '&', '<' and '>' are
// escaped in text, so rendered output parses back into the same tree as long
// as attribute values have no white space, quotes, '&' or '<'.
func Render(e *Element) (string, error) {
	if e == nil {
		return "", errors.New("nothing to render")
	}

	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalEndTags: true,
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	buildTree(&doc.Element, e)

	out, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	// canonical text escapes carriage return as a character reference, which
	// Unescape does not resolve
	return carriageReturn.Replace(out), nil
}

var carriageReturn = strings.NewReplacer("&#xD;", "\r")

func buildTree(parent *etree.Element, e *Element) {
	el := parent.CreateElement(e.Name)
	// CreateAttr replaces attributes with the same key, we want all of them
	for _, a := range e.Attributes {
		el.Attr = append(el.Attr, etree.Attr{Key: a.Name, Value: a.Value})
	}
	for _, child := range e.Children {
		switch c := child.(type) {
		case *Element:
			buildTree(el, c)
		case *Text:
			el.CreateText(c.Content)
		}
	}
}
