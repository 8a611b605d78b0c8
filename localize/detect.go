package localize

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// srcEncoding describes the BOM found at the beginning of a source file.
type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
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

// detectUTF looks for a BOM. UTF-32 LE must be checked before UTF-16 LE
// since the latter is a prefix of the former.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader wraps the reader with a decoder matching the detected BOM, so
// downstream code always sees plain UTF-8 without the BOM.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		return unicode.UTF8BOM.NewDecoder().Reader(r)
	case encUTF16BigEndian:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Reader(r)
	case encUTF16LittleEndian:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Reader(r)
	case encUTF32BigEndian:
		return utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder().Reader(r)
	case encUTF32LittleEndian:
		return utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder().Reader(r)
	default:
		panic("unsupported source encoding")
	}
}

// isArchiveFile reports whether path is a zip archive we can look into.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return false, err
	}

	t, err := filetype.Match(head[:n])
	if err != nil {
		return false, err
	}
	return t == matchers.TypeZip, nil
}

// isStylesheetFile reports whether path looks like a CSS source, along with
// the BOM-derived encoding when one is present.
func isStylesheetFile(path string) (bool, srcEncoding, error) {
	if !strings.EqualFold(filepath.Ext(path), ".css") {
		return false, encUnknown, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return false, encUnknown, err
	}
	return checkStylesheetHead(head[:n])
}

// isStylesheetInArchive is like isStylesheetFile for a zip archive member.
func isStylesheetInArchive(f *zip.File) (bool, srcEncoding, error) {
	if !strings.EqualFold(filepath.Ext(f.FileHeader.Name), ".css") {
		return false, encUnknown, nil
	}

	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	head := make([]byte, 512)
	n, err := r.Read(head)
	if err != nil && err != io.EOF {
		return false, encUnknown, err
	}
	return checkStylesheetHead(head[:n])
}

func checkStylesheetHead(head []byte) (bool, srcEncoding, error) {
	enc := detectUTF(head)
	if enc == encUnknown && bytes.IndexByte(head, 0) >= 0 {
		// binary data with a css extension
		return false, encUnknown, nil
	}
	return true, enc, nil
}
