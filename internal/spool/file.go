// Package spool provides temporary files that remove themselves on Close.
package spool

import (
	"errors"
	"io/fs"
	"os"
)

// File wraps an *os.File. Close removes the file from the filesystem, so an
// abandoned spool leaves nothing behind; Commit renames it into place
// instead.
type File struct {
	*os.File
	done bool
}

// New creates a spool file in dir using pattern, as in os.CreateTemp.
//
// Callers intending to Commit should spool in the target's directory so the
// rename stays on one filesystem.
func New(dir, pattern string) (*File, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return &File{File: f}, nil
}

// Commit closes the spool and renames it to the named path, replacing any
// existing file. After Commit, Close is a no-op.
func (f *File) Commit(name string) error {
	if f.done {
		return errors.New("spool: Commit on finished File")
	}
	f.done = true
	if err := f.File.Close(); err != nil {
		return err
	}
	return os.Rename(f.File.Name(), name)
}

// Close closes the file handle and removes the file from the filesystem.
func (f *File) Close() error {
	if f.done {
		return nil
	}
	f.done = true
	if err := f.File.Close(); err != nil {
		return err
	}
	if err := os.Remove(f.File.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
