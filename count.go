package detect

import (
	"io"
	"sync/atomic"
)

// CountingReader wraps an io.Reader and counts the bytes read through it.
//
// Handed to OpenFileWrapped, it counts compressed bytes as they come off the
// file, which against the file's size gives a load-progress figure.
type CountingReader struct {
	r io.Reader
	n atomic.Int64
}

func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{r: r}
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}

// N reports the bytes read so far. Safe to call concurrently with Read.
func (c *CountingReader) N() int64 { return c.n.Load() }

// CountingWriter wraps an io.Writer and counts the bytes written through it.
//
// Handed to CreateWrapped, it counts compressed bytes on their way to the
// file, reporting the output size without a stat.
type CountingWriter struct {
	w io.Writer
	n atomic.Int64
}

func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (c *CountingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n.Add(int64(n))
	return n, err
}

// N reports the bytes written so far. Safe to call concurrently with Write.
func (c *CountingWriter) N() int64 { return c.n.Load() }
