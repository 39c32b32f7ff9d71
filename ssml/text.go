package ssml

import (
	"strings"
)

// Unescape resolves the only character references recognized in text:
// &lt;, &gt; and &amp; (in that order). Everything else is left as is.
func Unescape(text string) string {
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	return strings.ReplaceAll(text, "&amp;", "&")
}

// Walk visits nodes depth-first in document order. When fn returns false for
// an element its children are skipped.
func Walk(n Node, fn func(Node) bool) {
	switch n := n.(type) {
	case *Element:
		if n == nil || !fn(n) {
			return
		}
		for _, child := range n.Children {
			Walk(child, fn)
		}
	case *Text:
		if n != nil {
			fn(n)
		}
	}
}

// Texts returns all text leaves under n in document order.
func Texts(n Node) []*Text {
	var out []*Text
	Walk(n, func(n Node) bool {
		if t, ok := n.(*Text); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// FlattenToText concatenates all text under n dropping the markup.
func FlattenToText(n Node) string {
	var buf strings.Builder
	for _, t := range Texts(n) {
		buf.WriteString(t.Content)
	}
	return buf.String()
}
