package common

import (
	"errors"
	"testing"
)

func TestOutputFmt(t *testing.T) {
	tests := []struct {
		name string
		want OutputFmt
		ext  string
	}{
		{"txt", OutputFmtTxt, ".txt"},
		{"sentences", OutputFmtSentences, ".sentences.txt"},
		{"tree", OutputFmtTree, ".tree.txt"},
		{"ssml", OutputFmtSsml, ".ssml"},
		{"yaml", OutputFmtYaml, ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutputFmt(tt.name)
			if err != nil {
				t.Fatalf("ParseOutputFmt() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFmt() = %v, want %v", got, tt.want)
			}
			if got.String() != tt.name {
				t.Errorf("String() = %q, want %q", got.String(), tt.name)
			}
			if got.Ext() != tt.ext {
				t.Errorf("Ext() = %q, want %q", got.Ext(), tt.ext)
			}
		})
	}

	if _, err := ParseOutputFmt("epub"); !errors.Is(err, ErrInvalidOutputFmt) {
		t.Errorf("ParseOutputFmt(epub) error = %v, want ErrInvalidOutputFmt", err)
	}
	if !OutputFmtSentences.NeedsSentences() || OutputFmtTxt.NeedsSentences() {
		t.Error("NeedsSentences() reports wrong formats")
	}
}

func TestNormalizeForm_Text(t *testing.T) {
	var f NormalizeForm
	if err := f.UnmarshalText([]byte("nfkc")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if f != NormalizeFormNfkc {
		t.Errorf("UnmarshalText() = %v, want %v", f, NormalizeFormNfkc)
	}
	data, err := f.MarshalText()
	if err != nil || string(data) != "nfkc" {
		t.Errorf("MarshalText() = %q, %v", data, err)
	}
	if err := f.UnmarshalText([]byte("nfd")); !errors.Is(err, ErrInvalidNormalizeForm) {
		t.Errorf("UnmarshalText(nfd) error = %v", err)
	}
}
