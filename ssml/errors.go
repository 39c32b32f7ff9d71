package ssml

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of parse failures. Every error returned by Parse is a *ParseError
// wrapping one of these, so callers can use errors.Is.
var (
	ErrEmptyInput             = errors.New("empty input")
	ErrRootWrapperMismatch    = errors.New("root wrapper mismatch")
	ErrUnterminatedElement    = errors.New("unterminated element")
	ErrMalformedAttributes    = errors.New("malformed attributes")
	ErrUnbalancedMixedContent = errors.New("unbalanced mixed content")
)

// ParseError describes why a document was rejected.
type ParseError struct {
	Kind    error
	Element string // name of the element being parsed, empty when not known yet
	Offset  int    // byte offset in the original document
	Detail  string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("ssml: ")
	b.WriteString(e.Kind.Error())
	if e.Element != "" {
		fmt.Fprintf(&b, " in <%s>", e.Element)
	}
	fmt.Fprintf(&b, " at offset %d", e.Offset)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func failure(kind error, element string, offset int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Element: element,
		Offset:  offset,
		Detail:  fmt.Sprintf(format, args...),
	}
}
