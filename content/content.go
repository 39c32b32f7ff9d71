// Package content turns a single SSML document into everything conversion
// needs: parsed tree, flattened text and sentences.
package content

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"ssmlc/common"
	"ssmlc/config"
	"ssmlc/content/text"
	"ssmlc/ssml"
	"ssmlc/state"
)

// Content is an independent unit of work for a single source document.
// Parsed tree may be shared with other Content values through the parse
// cache and must not be modified.
type Content struct {
	ID           uuid.UUID
	SrcName      string
	OutputFormat common.OutputFmt
	Digest       string
	Root         *ssml.Element
	Lang         language.Tag
	Text         string
	Sentences    []string
	// Cached is set when tree came from parse cache.
	Cached bool
}

// Prepare reads and parses document, flattens it to text and, when output
// format requires it, splits text into sentences.
func Prepare(ctx context.Context, r io.Reader, srcName string, outputFormat common.OutputFmt, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read SSML: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate content ID: %w", err)
	}

	sum := sha256.Sum256(data)
	c := &Content{
		ID:           id,
		SrcName:      srcName,
		OutputFormat: outputFormat,
		Digest:       hex.EncodeToString(sum[:]),
	}

	if root, ok := env.Parsed.Get(c.Digest); ok {
		c.Root, c.Cached = root, true
		log.Debug("Using cached parse tree", zap.String("digest", c.Digest))
	} else {
		if c.Root, err = ssml.Parse(string(data)); err != nil {
			return nil, fmt.Errorf("unable to parse SSML: %w", err)
		}
		env.Parsed.Set(c.Digest, c.Root)
	}

	c.Lang = documentLanguage(c.Root, log)
	c.Text = prepareText(ssml.FlattenToText(c.Root), &env.Cfg.Document.Text)

	if outputFormat.NeedsSentences() {
		c.Sentences = text.NewSplitter(c.Lang, log).Split(c.Text)
	}

	// Save source and parsed tree for debugging
	if env.Rpt != nil {
		dir := path.Join("documents", c.ID.String())
		env.Rpt.StoreData(path.Join(dir, filepath.Base(srcName)), data)
		env.Rpt.StoreData(path.Join(dir, "content.txt"), []byte(c.String()))
	}
	return c, nil
}

// documentLanguage returns language declared on root element, if any.
func documentLanguage(root *ssml.Element, log *zap.Logger) language.Tag {
	lang, ok := root.Attr("xml:lang")
	if !ok || len(lang) == 0 {
		return language.Und
	}
	tag, err := language.Parse(lang)
	if err != nil {
		log.Warn("Unable to parse document language, ignoring", zap.String("lang", lang), zap.Error(err))
		return language.Und
	}
	return tag
}

func prepareText(in string, cfg *config.TextConfig) string {
	out := in
	switch cfg.Normalize {
	case common.NormalizeFormNfc:
		out = norm.NFC.String(out)
	case common.NormalizeFormNfkc:
		out = norm.NFKC.String(out)
	}
	if cfg.CollapseSpaces {
		out = text.CollapseSpaces(out)
	}
	return out
}
