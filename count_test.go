package detect

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestCountingReader(t *testing.T) {
	p := filepath.Join(t.TempDir(), "payload.gz")
	w, err := Create(p, LevelMaximum)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(testPayload); err != nil {
		t.Error(err)
	}
	if err := w.Close(); err != nil {
		t.Error(err)
	}
	fi, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}

	var c *CountingReader
	z, err := OpenFileWrapped(p, func(r io.Reader) io.Reader {
		c = NewCountingReader(r)
		return c
	})
	if err != nil {
		t.Fatal(err)
	}
	defer z.Close()
	if _, err := io.ReadAll(z); err != nil {
		t.Error(err)
	}
	// The count is compressed bytes, so draining the stream must account
	// for exactly the file's size.
	if got, want := c.N(), fi.Size(); got != want {
		t.Errorf("got: %d, want: %d", got, want)
	}
}

func TestCountingWriter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "payload.zst")
	var c *CountingWriter
	w, err := CreateWrapped(p, LevelMinimum, func(wr io.Writer) io.Writer {
		c = NewCountingWriter(wr)
		return c
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(testPayload); err != nil {
		t.Error(err)
	}
	if err := w.Close(); err != nil {
		t.Error(err)
	}

	fi, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.N(), fi.Size(); got != want {
		t.Errorf("got: %d, want: %d", got, want)
	}
	if c.N() >= int64(len(testPayload)) {
		t.Errorf("output not compressed: %d >= %d", c.N(), len(testPayload))
	}
}
