// Package detect reads and writes compressed files and streams without the
// caller naming the compression in advance.
//
// When a file is opened by name, the format is taken from the file extension.
// When an arbitrary stream is wrapped, the format is sniffed from the leading
// magic bytes. Either way, callers get a plain io.ReadCloser or io.WriteCloser
// and never touch a codec directly.
package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format is a compression format recognized by this package.
type Format int

// Recognized formats.
//
// None doubles as "uncompressed" and "unrecognized": both cases mean the
// stream passes through untouched.
const (
	None Format = iota
	Gzip
	Zstd
	Xz
	Bzip2
	LZ4
	Snappy
)

var formatNames = [...]string{
	None:   "none",
	Gzip:   "gzip",
	Zstd:   "zstd",
	Xz:     "xz",
	Bzip2:  "bzip2",
	LZ4:    "lz4",
	Snappy: "snappy",
}

func (f Format) String() string {
	if f < None || int(f) >= len(formatNames) {
		return "invalid"
	}
	return formatNames[f]
}

// Extension reports the conventional file extension for the format, dot
// included. None reports the empty string.
func (f Format) Extension() string {
	switch f {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	case Xz:
		return ".xz"
	case Bzip2:
		return ".bz2"
	case LZ4:
		return ".lz4"
	case Snappy:
		return ".sz"
	}
	return ""
}

// Magic numbers for the recognized formats.
//
// The gzip entry is two bytes rather than the usual three so that streams
// using any compression method match, not just deflate. The snappy entry is
// the framing-format stream identifier chunk.
var magics = [...]struct {
	format Format
	magic  []byte
}{
	{Gzip, []byte{0x1F, 0x8B}},
	{Zstd, []byte{0x28, 0xB5, 0x2F, 0xFD}},
	{Xz, []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}},
	{Bzip2, []byte{0x42, 0x5A, 0x68}},
	{LZ4, []byte{0x04, 0x22, 0x4D, 0x18}},
	{Snappy, []byte{0xFF, 0x06, 0x00, 0x00, 0x73, 0x4E, 0x61, 0x50, 0x70, 0x59}},
}

var maxMagicLen = func() int {
	var n int
	for _, m := range magics {
		if len(m.magic) > n {
			n = len(m.magic)
		}
	}
	return n
}()

// Detect reports the compression format indicated by the leading bytes of a
// stream. Prefixes shorter than a format's magic number never match that
// format; an empty prefix reports None.
func Detect(prefix []byte) Format {
	for _, m := range magics {
		if len(prefix) < len(m.magic) {
			continue
		}
		if bytes.Equal(m.magic, prefix[:len(m.magic)]) {
			return m.format
		}
	}
	return None
}

var extensions = map[string]Format{
	".gz":   Gzip,
	".zst":  Zstd,
	".zstd": Zstd,
	".xz":   Xz,
	".bz2":  Bzip2,
	".lz4":  LZ4,
	".sz":   Snappy,
}

// DetectPath reports the compression format indicated by the extension of the
// named file. The comparison is case-insensitive. An unrecognized or missing
// extension reports None.
func DetectPath(name string) Format {
	if f, ok := extensions[strings.ToLower(filepath.Ext(name))]; ok {
		return f
	}
	return None
}
