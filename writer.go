package detect

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Writer writes a compressed or uncompressed stream.
//
// Close is mandatory: every supported codec emits framing on close, and a
// Writer abandoned without a Close produces a truncated stream. Close is
// idempotent, so an unconditional defer is safe alongside an explicit error
// check.
type Writer struct {
	w      io.Writer
	close  []func() error
	flush  []func() error
	format Format
	closed bool
}

var _ io.WriteCloser = (*Writer)(nil)

// Create creates the named file, compressing according to the file
// extension. An unrecognized extension writes bytes as-is.
func Create(name string, lvl Level) (*Writer, error) {
	return CreateWrapped(name, lvl, nil)
}

// CreateWrapped is Create with a hook: wrap receives the raw file stream and
// its result is written in the file's place, after compression.
//
// The hook sees compressed bytes. Wrapping with a [CountingWriter] yields the
// on-disk size of the output as it grows.
func CreateWrapped(name string, lvl Level, wrap func(io.Writer) io.Writer) (*Writer, error) {
	f := DetectPath(name)
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	var wr io.Writer = fd
	if wrap != nil {
		wr = wrap(wr)
	}
	bw := bufio.NewWriter(wr)

	w, err := newWriter(f, bw, lvl)
	if err != nil {
		fd.Close()
		os.Remove(name)
		return nil, err
	}
	detectCounter.WithLabelValues(f.String(), "extension").Inc()
	w.flush = append(w.flush, bw.Flush)
	w.close = append(w.close, bw.Flush, fd.Close)
	return w, nil
}

// NewWriter returns a Writer compressing to w in the given format.
func NewWriter(w io.Writer, f Format, lvl Level) (*Writer, error) {
	z, err := newWriter(f, w, lvl)
	if err != nil {
		return nil, err
	}
	detectCounter.WithLabelValues(f.String(), "explicit").Inc()
	return z, nil
}

func newWriter(f Format, w io.Writer, lvl Level) (*Writer, error) {
	z := &Writer{format: f}
	switch f {
	case Gzip:
		g, err := gzip.NewWriterLevel(w, lvl.gzip())
		if err != nil {
			return nil, fmt.Errorf("detect: gzip: %w", err)
		}
		z.w = g
		z.flush = append(z.flush, g.Flush)
		z.close = append(z.close, g.Close)
	case Zstd:
		el, err := lvl.zstd()
		if err != nil {
			return nil, err
		}
		e, err := zstd.NewWriter(w, zstd.WithEncoderLevel(el))
		if err != nil {
			return nil, fmt.Errorf("detect: zstd: %w", err)
		}
		z.w = e
		z.flush = append(z.flush, e.Flush)
		z.close = append(z.close, e.Close)
	case Xz:
		if lvl == LevelNone {
			return nil, fmt.Errorf("detect: xz: %q: %w", lvl, ErrLevelUnsupported)
		}
		x, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("detect: xz: %w", err)
		}
		z.w = x
		z.close = append(z.close, x.Close)
	case LZ4:
		cl, err := lvl.lz4()
		if err != nil {
			return nil, err
		}
		l := lz4.NewWriter(w)
		// Checksummed frames, matching what lz4(1) emits.
		if err := l.Apply(lz4.CompressionLevelOption(cl), lz4.ChecksumOption(true)); err != nil {
			return nil, fmt.Errorf("detect: lz4: %w", err)
		}
		z.w = l
		z.flush = append(z.flush, l.Flush)
		z.close = append(z.close, l.Close)
	case Snappy:
		s := snappy.NewBufferedWriter(w)
		z.w = s
		z.flush = append(z.flush, s.Flush)
		z.close = append(z.close, s.Close)
	case Bzip2:
		return nil, fmt.Errorf("detect: bzip2: %w", ErrNoEncoder)
	case None:
		z.w = w
	default:
		panic(fmt.Sprintf("programmer error: unknown format: %v", f))
	}
	return z, nil
}

// Format reports the compression format being written.
func (z *Writer) Format() Format { return z.format }

func (z *Writer) Write(p []byte) (int, error) {
	if z.closed {
		return 0, ErrClosed
	}
	return z.w.Write(p)
}

// Flush pushes buffered data to the underlying writer. The compressed stream
// stays valid but flushing costs compression ratio; most callers only need
// Close.
func (z *Writer) Flush() error {
	if z.closed {
		return ErrClosed
	}
	for _, f := range z.flush {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}

// Close finalizes the compressed stream and closes the underlying file if
// the Writer opened it. Calling Close again is a no-op.
func (z *Writer) Close() error {
	if z.closed {
		return nil
	}
	z.closed = true
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
	return err
}
