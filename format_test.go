package detect

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tt := []struct {
		name   string
		prefix []byte
		want   Format
	}{
		{"Empty", nil, None},
		{"Gzip", []byte{0x1F, 0x8B, 0x08, 0x00}, Gzip},
		{"GzipTruncated", []byte{0x1F}, None},
		{"Zstd", []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00}, Zstd},
		{"Xz", []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}, Xz},
		{"Bzip2", []byte("BZh91AY&SY"), Bzip2},
		{"LZ4", []byte{0x04, 0x22, 0x4D, 0x18, 0x64}, LZ4},
		{"Snappy", []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}, Snappy},
		{"SnappyTruncated", []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N'}, None},
		{"Plain", []byte("hello, world"), None},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.prefix); got != tc.want {
				t.Errorf("got: %v, want: %v", got, tc.want)
			}
		})
	}
}

func TestDetectPath(t *testing.T) {
	tt := []struct {
		name string
		want Format
	}{
		{"layer.tar.gz", Gzip},
		{"DUMP.GZ", Gzip},
		{"db.zst", Zstd},
		{"db.zstd", Zstd},
		{"kernel.xz", Xz},
		{"wiki.bz2", Bzip2},
		{"trace.lz4", LZ4},
		{"spool.sz", Snappy},
		{"notes.txt", None},
		{"noextension", None},
		{"", None},
		{"dir.gz/inner", None},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectPath(tc.name); got != tc.want {
				t.Errorf("got: %v, want: %v", got, tc.want)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	// Every named extension must map back to the format that reports it.
	for _, f := range []Format{Gzip, Zstd, Xz, Bzip2, LZ4, Snappy} {
		if got := DetectPath("file" + f.Extension()); got != f {
			t.Errorf("%v: extension %q maps to %v", f, f.Extension(), got)
		}
	}
	if got := None.Extension(); got != "" {
		t.Errorf("got: %q, want: %q", got, "")
	}
}
