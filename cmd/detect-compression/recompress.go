package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/quay/zlog"
	"golang.org/x/sync/errgroup"

	detect "github.com/IgaguriMK/detect-compression"
	"github.com/IgaguriMK/detect-compression/internal/spool"
)

// recompressCmd rewrites every named file into the compression implied by
// the -o extension, next to the original.
func recompressCmd(ctx context.Context, cfg *commonConfig, args []string) error {
	ctx = zlog.ContextWithValues(ctx, "component", "main.recompressCmd")
	fs := flag.NewFlagSet("recompress", flag.ExitOnError)
	ext := fs.String("o", ".gz", "target compression, named by extension")
	lvlArg := fs.String("l", "max", `compression level: "none", "min", or "max"`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("no files named")
	}
	if !strings.HasPrefix(*ext, ".") {
		*ext = "." + *ext
	}
	tgt := detect.DetectPath(*ext)
	if tgt == detect.None {
		return fmt.Errorf("unknown compression extension %q", *ext)
	}
	var lvl detect.Level
	switch *lvlArg {
	case "none":
		lvl = detect.LevelNone
	case "min":
		lvl = detect.LevelMinimum
	case "max":
		lvl = detect.LevelMaximum
	default:
		return fmt.Errorf("unknown level %q", *lvlArg)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for _, name := range fs.Args() {
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return recompressOne(ctx, name, *ext, tgt, lvl)
		})
	}
	return g.Wait()
}

func recompressOne(ctx context.Context, name, ext string, tgt detect.Format, lvl detect.Level) error {
	src, err := detect.OpenFile(name)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			zlog.Warn(ctx).Err(err).Msg("unable to close input")
		}
	}()

	out := name + ext
	if e := src.Format().Extension(); e != "" && strings.HasSuffix(name, e) {
		out = strings.TrimSuffix(name, e) + ext
	}
	if out == name {
		return fmt.Errorf("%s: already %s", name, tgt)
	}

	// Spool next to the target so the final rename is atomic.
	sp, err := spool.New(filepath.Dir(name), "recompress.*")
	if err != nil {
		return err
	}
	defer func() {
		if err := sp.Close(); err != nil {
			zlog.Warn(ctx).Err(err).Msg("unable to close spool")
		}
	}()

	w, err := detect.NewWriter(sp, tgt, lvl)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := sp.Commit(out); err != nil {
		return err
	}
	zlog.Debug(ctx).
		Str("in", name).
		Str("out", out).
		Msg("recompressed")
	return nil
}
