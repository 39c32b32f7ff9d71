// Package text splits flattened speech text into sentences and words.
package text

import (
	"iter"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type Splitter struct {
	*sentences.DefaultSentenceTokenizer
}

// NewSplitter returns sentence splitter for the language. Only English
// training data is available, other languages are split using English rules.
// Nil is returned (and splitting is off) when tokenizer cannot be created.
func NewSplitter(lang language.Tag, log *zap.Logger) *Splitter {
	if base, _ := lang.Base(); lang != language.Und && base.String() != "en" {
		log.Warn("No sentence tokenizer model for language, using English rules",
			zap.Stringer("tag", lang), zap.String("language", display.English.Languages().Name(lang)))
	}

	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("Unable to load sentences tokenizer data, turning off sentence splitting", zap.Stringer("tag", lang), zap.Error(err))
		return nil
	}
	return &Splitter{tok}
}

// Split returns slice of sentences.
// For memory-efficient streaming, use Sentences iterator instead.
func (s *Splitter) Split(in string) []string {
	var out []string
	for sentence := range s.Sentences(in) {
		out = append(out, sentence)
	}
	return out
}

// Sentences returns an iterator over sentences. Whitespace separating
// sentences stays with the preceding sentence, so concatenating all sentences
// gives the input back.
func (s *Splitter) Sentences(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			// tokenizer is off
			yield(in)
			return
		}

		tokens := s.Tokenize(in)
		for i := 0; i < len(tokens)-1; i++ {
			// tokenizer attaches separating spaces to the next sentence
			text, next := tokens[i].Text, tokens[i+1].Text
			if idx := strings.IndexFunc(next, func(r rune) bool { return !unicode.IsSpace(r) }); idx > 0 {
				text += next[:idx]
				tokens[i+1].Text = next[idx:]
			}
			if !yield(text) {
				return
			}
		}
		if len(tokens) > 0 {
			yield(tokens[len(tokens)-1].Text)
		}
	}
}

// Words returns an iterator over space separated words, empty words are
// skipped. NBSP does not separate words.
func Words(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for word := range strings.FieldsFuncSeq(in, isSeparator) {
			if !yield(word) {
				return
			}
		}
	}
}

// CollapseSpaces replaces every run of separators with a single space and
// trims the result.
func CollapseSpaces(in string) string {
	var b strings.Builder
	b.Grow(len(in))
	for word := range Words(in) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	return b.String()
}

func isSeparator(r rune) bool {
	if uint32(r) <= unicode.MaxLatin1 {
		switch r {
		// exclude NBSP from the list of white space separators for latin1 symbols
		case '\t', '\n', '\v', '\f', '\r', ' ', 0x85:
			return true
		}
		return false
	}
	return unicode.IsSpace(r)
}
