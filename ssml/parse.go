package ssml

import (
	"strings"
	"unicode"
)

// Markup is scanned directly on string offsets, one element at a time. There
// is no tokenizer: every element span is split into opening tag, body and
// closing tag, and mixed bodies are split into leading text, a single nested
// element and trailing text. Sibling elements directly inside a mixed body are
// not recognized separately - the span from the first '<' to the last '>' is
// always handed down as one element.

const (
	rootOpenPrefix = "<" + RootName
	rootClose      = "</" + RootName + ">"
)

type bodyKind int

const (
	bodyEmpty bodyKind = iota
	bodyText
	bodyMixed
)

// openTag is the result of scanning an opening tag.
type openTag struct {
	name  string
	attrs []Attribute
	end   int // offset right after closing '>'
}

// parser keeps the whole document so that failures could report absolute
// offsets. It holds no other state and is not reused across documents.
type parser struct {
	src string
}

// Parse builds the element tree for a document. The document must literally
// start with "<speak" and end with "</speak>".
func Parse(document string) (*Element, error) {
	if strings.TrimSpace(document) == "" {
		return nil, failure(ErrEmptyInput, "", 0, "nothing to parse")
	}
	if !strings.HasPrefix(document, rootOpenPrefix) {
		return nil, failure(ErrRootWrapperMismatch, "", 0, "document must start with %q", rootOpenPrefix)
	}
	if !strings.HasSuffix(document, rootClose) {
		return nil, failure(ErrRootWrapperMismatch, "", len(document), "document must end with %q", rootClose)
	}

	p := parser{src: document}
	root, err := p.element(0, len(document))
	if err != nil {
		return nil, err
	}
	if root.Name != RootName {
		return nil, failure(ErrRootWrapperMismatch, root.Name, 0, "root element must be <%s>", RootName)
	}
	return root, nil
}

// element parses src[start:end] as a single element.
func (p *parser) element(start, end int) (*Element, error) {
	tag, err := p.openTag(start, end)
	if err != nil {
		return nil, err
	}

	bodyStart, bodyEnd, err := p.body(tag, end)
	if err != nil {
		return nil, err
	}

	el := &Element{Name: tag.name, Attributes: tag.attrs}

	body := p.src[bodyStart:bodyEnd]
	switch classify(body) {
	case bodyEmpty:
		return el, nil
	case bodyText:
		el.Children = []Node{&Text{Content: Unescape(body)}}
		return el, nil
	}

	if el.Children, err = p.mixed(tag.name, bodyStart, bodyEnd); err != nil {
		return nil, err
	}
	return el, nil
}

// openTag extracts name and attributes from the first <...> of src[start:end].
func (p *parser) openTag(start, end int) (openTag, error) {
	s := p.src[start:end]

	lt := strings.IndexByte(s, '<')
	gt := strings.IndexByte(s, '>')
	if lt < 0 || gt < lt {
		return openTag{}, failure(ErrUnterminatedElement, "", start, "opening tag is not delimited with '<' and '>'")
	}

	inner := s[lt+1 : gt]
	trimmed := strings.TrimSpace(inner)
	innerStart := start + lt + 1 + len(inner) - len(strings.TrimLeftFunc(inner, unicode.IsSpace))

	tag := openTag{name: trimmed, end: start + gt + 1}

	name, rest, found := strings.Cut(trimmed, " ")
	if found {
		tag.name = name
		attrs, err := parseAttributes(name, rest, innerStart+len(name)+1)
		if err != nil {
			return openTag{}, err
		}
		tag.attrs = attrs
	}
	if tag.name == "" {
		return openTag{}, failure(ErrUnterminatedElement, "", start+lt, "opening tag has no name")
	}
	if strings.HasPrefix(tag.name, "/") {
		return openTag{}, failure(ErrUnterminatedElement, "", start+lt, "closing tag <%s> where an opening tag was expected", tag.name)
	}
	return tag, nil
}

// parseAttributes splits attribute text into name="value" pairs. Value token
// ends at the next space and must contain exactly two double quotes. Any tail
// without '=' is ignored.
func parseAttributes(element, text string, offset int) ([]Attribute, error) {
	if !strings.Contains(text, "=") {
		return nil, failure(ErrMalformedAttributes, element, offset, "no name=value pair in %q", text)
	}

	var (
		attrs []Attribute
		rest  = text
		pos   = 0 // offset of rest within text
	)
	for {
		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			break
		}

		key := strings.TrimSpace(rest[:eq])
		if key == "" {
			return nil, failure(ErrMalformedAttributes, element, offset+pos, "attribute has no name")
		}

		after := rest[eq+1:]
		rest = strings.TrimLeftFunc(after, unicode.IsSpace)
		pos += eq + 1 + len(after) - len(rest)

		token := rest
		if sp := strings.IndexByte(rest, ' '); sp >= 0 {
			token = rest[:sp]
		}
		value := strings.TrimSpace(token)
		if strings.Count(value, `"`) != 2 {
			return nil, failure(ErrMalformedAttributes, element, offset+pos, "value of %q must be enclosed in double quotes, got %q", key, value)
		}

		attrs = append(attrs, Attribute{Name: key, Value: strings.ReplaceAll(value, `"`, "")})

		rest = rest[len(token):]
		pos += len(token)
	}
	return attrs, nil
}

// body returns span of the element body: from the end of opening tag to the
// last occurrence of matching closing tag before end. Using the last
// occurrence lets nested elements with the same name through.
func (p *parser) body(tag openTag, end int) (int, int, error) {
	closing := "</" + tag.name + ">"

	last := strings.LastIndex(p.src[tag.end:end], closing)
	if last < 0 {
		return 0, 0, failure(ErrUnterminatedElement, tag.name, tag.end, "closing tag %q not found", closing)
	}
	return tag.end, tag.end + last, nil
}

func classify(body string) bodyKind {
	if len(body) == 0 {
		return bodyEmpty
	}
	if !strings.ContainsAny(body, "<>") {
		return bodyText
	}
	return bodyMixed
}

// mixed decomposes body src[start:end] into leading text, one nested element
// and trailing text.
func (p *parser) mixed(element string, start, end int) ([]Node, error) {
	body := p.src[start:end]

	first := strings.IndexByte(body, '<')
	last := strings.LastIndexByte(body, '>')
	switch {
	case first < 0:
		return nil, failure(ErrUnbalancedMixedContent, element, start+last, "'>' without matching '<'")
	case last < 0:
		return nil, failure(ErrUnbalancedMixedContent, element, start+first, "'<' without matching '>'")
	case last < first:
		return nil, failure(ErrUnbalancedMixedContent, element, start+last, "'>' precedes first '<'")
	}

	var children []Node
	if leading := body[:first]; len(leading) > 0 {
		children = append(children, &Text{Content: Unescape(leading)})
	}

	child, err := p.element(start+first, start+last+1)
	if err != nil {
		return nil, err
	}
	children = append(children, child)

	if trailing := body[last+1:]; len(trailing) > 0 {
		children = append(children, &Text{Content: Unescape(trailing)})
	}
	return children, nil
}
