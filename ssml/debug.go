package ssml

import (
	"ssmlc/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable indented tree of the element and everything
// under it. Text is quoted so surrounding spaces stay visible.
func (e *Element) String() string {
	if e == nil {
		return "<nil Element>"
	}
	return treeWriter{debug.NewTreeWriter()}.element(0, e).String()
}

func (tw treeWriter) element(depth int, e *Element) treeWriter {
	tw.Line(depth, "Element name=%q attrs=%d children=%d", e.Name, len(e.Attributes), len(e.Children))
	for _, a := range e.Attributes {
		tw.Pair(depth+1, "@"+a.Name, a.Value)
	}
	for _, child := range e.Children {
		switch c := child.(type) {
		case *Element:
			tw.element(depth+1, c)
		case *Text:
			tw.TextBlock(depth+1, "Text", c.Content)
		}
	}
	return tw
}
