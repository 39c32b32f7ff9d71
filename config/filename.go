package config

import (
	"strings"
	"unicode"
)

const badFileName = "_bad_file_name_"

// CleanFileName makes a single path segment out of in: characters reserved on
// this platform and control characters are dropped, as are leading dots and
// trailing dots or spaces.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(reservedNameChars, r) {
			return -1
		}
		return r
	}, in)
	out = strings.TrimRight(strings.TrimLeft(out, "."), ". ")
	if len(out) == 0 {
		return badFileName
	}
	return out
}
