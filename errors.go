package detect

import "errors"

// Sentinel errors reported by Writers.
//
// These are always wrapped with the format they concern; test with
// [errors.Is].
var (
	// ErrNoEncoder is reported when a format can be read but not written.
	ErrNoEncoder = errors.New("no encoder available for format")
	// ErrLevelUnsupported is reported when a format cannot express the
	// requested compression level.
	ErrLevelUnsupported = errors.New("compression level not supported by format")
	// ErrClosed is reported for writes to a closed Writer.
	ErrClosed = errors.New("write on closed Writer")
)
