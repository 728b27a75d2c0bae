package detect

import (
	"bufio"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Reader reads a compressed or uncompressed stream, decompressing
// transparently.
type Reader struct {
	r      io.Reader
	close  []func() error
	format Format
}

var _ io.ReadCloser = (*Reader)(nil)

// NewReader sniffs the leading bytes of r and returns a Reader decompressing
// the detected format. Unrecognized streams pass through unmodified, as do
// streams too short to hold any magic number.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	b, err := br.Peek(maxMagicLen)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		// Short stream. Whatever was peeked is still enough for any
		// format it could hold.
	default:
		return nil, fmt.Errorf("detect: unable to peek stream: %w", err)
	}
	f := Detect(b)
	z, err := newReader(f, br)
	if err != nil {
		return nil, err
	}
	detectCounter.WithLabelValues(f.String(), "magic").Inc()
	return z, nil
}

// OpenFile opens the named file for reading, decompressing according to the
// file extension. Files with an unrecognized extension are sniffed by
// contents, so a misnamed compressed file still reads correctly.
func OpenFile(name string) (*Reader, error) {
	return OpenFileWrapped(name, nil)
}

// OpenFileWrapped is OpenFile with a hook: wrap receives the raw file stream
// before any decompression, and its result is read in the file's place.
//
// The hook sees compressed bytes. Wrapping with a [CountingReader] yields
// load progress in terms of on-disk size, which a post-decompression count
// cannot provide.
func OpenFileWrapped(name string, wrap func(io.Reader) io.Reader) (*Reader, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var rd io.Reader = fd
	if wrap != nil {
		rd = wrap(rd)
	}

	method := "extension"
	br := bufio.NewReader(rd)
	f := DetectPath(name)
	if f == None {
		method = "magic"
		b, err := br.Peek(maxMagicLen)
		if err != nil && !errors.Is(err, io.EOF) {
			fd.Close()
			return nil, fmt.Errorf("detect: unable to peek %q: %w", name, err)
		}
		f = Detect(b)
	}

	z, err := newReader(f, br)
	if err != nil {
		fd.Close()
		return nil, err
	}
	detectCounter.WithLabelValues(f.String(), method).Inc()
	z.close = append(z.close, fd.Close)
	return z, nil
}

func newReader(f Format, rd io.Reader) (*Reader, error) {
	z := &Reader{format: f}
	switch f {
	case Gzip:
		g, err := gzip.NewReader(rd)
		if err != nil {
			return nil, fmt.Errorf("detect: gzip: %w", err)
		}
		z.r = g
		z.close = append(z.close, g.Close)
	case Zstd:
		d, err := zstd.NewReader(rd)
		if err != nil {
			return nil, fmt.Errorf("detect: zstd: %w", err)
		}
		z.r = d
		z.close = append(z.close, func() error { d.Close(); return nil })
	case Xz:
		x, err := xz.NewReader(rd)
		if err != nil {
			return nil, fmt.Errorf("detect: xz: %w", err)
		}
		z.r = x
	case Bzip2:
		z.r = bzip2.NewReader(rd)
	case LZ4:
		z.r = lz4.NewReader(rd)
	case Snappy:
		z.r = snappy.NewReader(rd)
	case None:
		z.r = rd
	default:
		panic(fmt.Sprintf("programmer error: unknown format: %v", f))
	}
	return z, nil
}

// Format reports the detected compression format.
func (z *Reader) Format() Format { return z.format }

func (z *Reader) Read(p []byte) (int, error) { return z.r.Read(p) }

// Close releases the decompressor and, for Readers from OpenFile, the
// underlying file.
func (z *Reader) Close() error {
	var err error
	for _, c := range z.close {
		if e := c(); e != nil {
			if err == nil {
				err = e
			} else {
				err = fmt.Errorf("%v; %v", err, e)
			}
		}
	}
	z.close = nil
	return err
}
