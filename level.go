package detect

import (
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Level selects the compression effort for Writers.
//
// The three settings deliberately coarsen the knobs the individual codecs
// expose: pick the cheap end, the small end, or no compression at all, and
// the codec-specific tuning stays out of the API.
type Level int

const (
	// LevelNone stores bytes without compression. Only formats with a
	// stored mode support it; the rest report ErrLevelUnsupported.
	LevelNone Level = iota
	// LevelMinimum is the fastest setting, trading output size for speed.
	LevelMinimum
	// LevelMaximum is the smallest output, trading speed for size.
	LevelMaximum
)

var levelNames = [...]string{
	LevelNone:    "none",
	LevelMinimum: "minimum",
	LevelMaximum: "maximum",
}

func (l Level) String() string {
	if l < LevelNone || int(l) >= len(levelNames) {
		return "invalid"
	}
	return levelNames[l]
}

func (l Level) gzip() int {
	switch l {
	case LevelNone:
		return gzip.NoCompression
	case LevelMinimum:
		return gzip.BestSpeed
	case LevelMaximum:
		return gzip.BestCompression
	}
	return gzip.DefaultCompression
}

func (l Level) zstd() (zstd.EncoderLevel, error) {
	switch l {
	case LevelMinimum:
		return zstd.SpeedFastest, nil
	case LevelMaximum:
		return zstd.SpeedBestCompression, nil
	}
	return 0, fmt.Errorf("detect: zstd: %q: %w", l, ErrLevelUnsupported)
}

func (l Level) lz4() (lz4.CompressionLevel, error) {
	switch l {
	case LevelMinimum:
		return lz4.Fast, nil
	case LevelMaximum:
		return lz4.Level9, nil
	}
	return 0, fmt.Errorf("detect: lz4: %q: %w", l, ErrLevelUnsupported)
}
