package convert

import (
	"archive/zip"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"ssmlc/ssml"
)

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

func (e srcEncoding) String() string {
	switch e {
	case encUTF8:
		return "UTF-8"
	case encUTF16BigEndian:
		return "UTF-16BE"
	case encUTF16LittleEndian:
		return "UTF-16LE"
	case encUTF32BigEndian:
		return "UTF-32BE"
	case encUTF32LittleEndian:
		return "UTF-32LE"
	default:
		return "unknown"
	}
}

// headSize is enough for filetype matchers and for a reasonable XML prolog.
const headSize = 1024

var (
	xmlDeclaration = regexp.MustCompile(`^<\?xml[^>]*\?>`)
	xmlEncoding    = regexp.MustCompile(`encoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)
)

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// detectUTF looks at the byte order mark only. UTF-32LE must be checked
// before UTF-16LE since their marks share first two bytes.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader returns reader producing UTF-8 for the detected encoding. When
// there is no byte order mark, encoding declared in XML prolog is honored.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	}

	br := bufio.NewReaderSize(r, headSize)
	head, _ := br.Peek(headSize)
	label := declaredEncoding(head)
	if label == "" || strings.EqualFold(label, "utf-8") {
		return br
	}
	cr, err := charset.NewReaderLabel(label, br)
	if err != nil {
		// unknown label, assume UTF-8
		return br
	}
	return cr
}

func declaredEncoding(head []byte) string {
	decl := xmlDeclaration.Find(bytes.TrimLeft(head, " \t\r\n"))
	if decl == nil {
		return ""
	}
	m := xmlEncoding.FindSubmatch(decl)
	if m == nil {
		return ""
	}
	return string(m[1])
}

// trimProlog removes optional XML declaration and surrounding white space,
// leaving document starting with its root element.
func trimProlog(doc string) string {
	doc = strings.TrimLeft(strings.TrimPrefix(doc, "\ufeff"), " \t\r\n")
	if loc := xmlDeclaration.FindStringIndex(doc); loc != nil {
		doc = doc[loc[1]:]
	}
	return strings.Trim(doc, " \t\r\n")
}

// looksLikeSSML checks that decoded head of a file starts with the root element.
func looksLikeSSML(head []byte, enc srcEncoding) bool {
	decoded, err := io.ReadAll(selectReader(bytes.NewReader(head), enc))
	if err != nil && len(decoded) == 0 {
		return false
	}
	return strings.HasPrefix(trimProlog(string(decoded)), "<"+ssml.RootName)
}

func hasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

func readHead(r io.Reader) ([]byte, error) {
	head := make([]byte, headSize)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return head[:n], nil
}

func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return false, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return filetype.Is(head, "zip"), nil
}

func isSSMLFile(path string, exts []string) (bool, srcEncoding, error) {
	if !hasExtension(path, exts) {
		return false, encUnknown, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return false, encUnknown, fmt.Errorf("unable to read %s: %w", path, err)
	}
	enc := detectUTF(head)
	return looksLikeSSML(head, enc), enc, nil
}

func isSSMLInArchive(f *zip.File, exts []string) (bool, srcEncoding, error) {
	if !hasExtension(f.FileHeader.Name, exts) {
		return false, encUnknown, nil
	}

	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	head, err := readHead(r)
	if err != nil {
		return false, encUnknown, fmt.Errorf("unable to read %s: %w", f.FileHeader.Name, err)
	}
	enc := detectUTF(head)
	return looksLikeSSML(head, enc), enc, nil
}
