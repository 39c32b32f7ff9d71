// Package common holds enumerations shared by configuration and conversion
// code. Methods are produced by go-enum.
package common

//go:generate go tool go-enum --marshal --names

// Specification of requested output type.
// ENUM(txt, sentences, tree, ssml, yaml)
type OutputFmt int

// NeedsSentences reports whether the format requires text to be split.
func (o OutputFmt) NeedsSentences() bool {
	return o == OutputFmtSentences
}

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtTxt:
		return ".txt"
	case OutputFmtSentences:
		return ".sentences.txt"
	case OutputFmtTree:
		return ".tree.txt"
	case OutputFmtSsml:
		return ".ssml"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Unicode normalization applied to flattened text.
// ENUM(none, nfc, nfkc)
type NormalizeForm int
