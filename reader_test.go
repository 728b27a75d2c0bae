package detect

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
)

func TestOpenFileBzip2(t *testing.T) {
	// Stdlib bzip2 has no encoder, so this fixture is pre-generated with
	// bzip2(1).
	z, err := OpenFile(filepath.Join("testdata", "fixture.txt.bz2"))
	if err != nil {
		t.Fatal(err)
	}
	defer z.Close()
	if got := z.Format(); got != Bzip2 {
		t.Errorf("got: %v, want: %v", got, Bzip2)
	}
	got, err := io.ReadAll(z)
	if err != nil {
		t.Error(err)
	}
	want := []byte("hello, bzip2 fixture\n")
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
}

func TestNewReaderEmpty(t *testing.T) {
	z, err := NewReader(bytes.NewReader(nil))
	if err != nil {
		t.Fatal(err)
	}
	defer z.Close()
	if got := z.Format(); got != None {
		t.Errorf("got: %v, want: %v", got, None)
	}
	b, err := io.ReadAll(z)
	if err != nil {
		t.Error(err)
	}
	if len(b) != 0 {
		t.Errorf("unexpected bytes: %q", b)
	}
}

// Streams shorter than any magic number pass through untouched.
func TestNewReaderShort(t *testing.T) {
	z, err := NewReader(bytes.NewReader([]byte("hi")))
	if err != nil {
		t.Fatal(err)
	}
	defer z.Close()
	if got := z.Format(); got != None {
		t.Errorf("got: %v, want: %v", got, None)
	}
	got, err := io.ReadAll(z)
	if err != nil {
		t.Error(err)
	}
	if want := []byte("hi"); !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
}

// A compressed file with an unrecognized extension is sniffed by contents.
func TestOpenFileMisnamed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "payload.dat")
	fd, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	g := gzip.NewWriter(fd)
	if _, err := g.Write(testPayload); err != nil {
		t.Error(err)
	}
	if err := g.Close(); err != nil {
		t.Error(err)
	}
	if err := fd.Close(); err != nil {
		t.Error(err)
	}

	z, err := OpenFile(p)
	if err != nil {
		t.Fatal(err)
	}
	defer z.Close()
	if got := z.Format(); got != Gzip {
		t.Errorf("got: %v, want: %v", got, Gzip)
	}
	got, err := io.ReadAll(z)
	if err != nil {
		t.Error(err)
	}
	if !cmp.Equal(got, testPayload) {
		t.Error(cmp.Diff(got, testPayload))
	}
}

// A plain file with a compressed extension must surface the codec's error
// instead of returning garbage.
func TestOpenFileLyingExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "payload.gz")
	if err := os.WriteFile(p, []byte("not actually gzip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(p); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nonexistent.gz"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got: %v, want: %v", err, os.ErrNotExist)
	}
}
