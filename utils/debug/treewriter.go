// Package debug has helpers producing human readable dumps of parsed
// documents.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates indented lines, one per tree node.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// Len returns number of bytes written so far.
func (tw TreeWriter) Len() int {
	return tw.w.Len()
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes character data quoted, so control characters and leading
// or trailing spaces stay visible.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Pair writes key=value with the value quoted.
func (tw TreeWriter) Pair(depth int, key, value string) {
	tw.pad(depth)
	tw.w.WriteString(key)
	tw.w.WriteByte('=')
	tw.w.WriteString(strconv.Quote(value))
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(indent)
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
