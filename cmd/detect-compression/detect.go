package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/quay/zlog"
	"golang.org/x/sync/errgroup"

	detect "github.com/IgaguriMK/detect-compression"
)

// detectCmd prints the detected format of every named file, one per line.
func detectCmd(ctx context.Context, cfg *commonConfig, args []string) error {
	ctx = zlog.ContextWithValues(ctx, "component", "main.detectCmd")
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	byExt := fs.Bool("e", false, "detect by file extension instead of contents")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("no files named")
	}

	names := fs.Args()
	res := make([]detect.Format, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, n := range names {
		i, n := i, n
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if *byExt {
				res[i] = detect.DetectPath(n)
				return nil
			}
			f, err := detectFile(n)
			if err != nil {
				return err
			}
			res[i] = f
			zlog.Debug(ctx).
				Str("file", n).
				Stringer("format", res[i]).
				Msg("detected")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, n := range names {
		fmt.Printf("%s: %s\n", n, res[i])
	}
	return nil
}

// detectFile sniffs the named file's contents. An empty file has no bytes to
// sniff, so the file extension answers for it.
func detectFile(name string) (detect.Format, error) {
	f, err := os.Open(name)
	if err != nil {
		return detect.None, err
	}
	defer f.Close()
	z, err := detect.NewReader(f)
	if err != nil {
		return detect.None, fmt.Errorf("%s: %w", name, err)
	}
	defer z.Close()
	got := z.Format()
	if got == detect.None {
		if fi, err := f.Stat(); err == nil && fi.Size() == 0 {
			got = detect.DetectPath(name)
		}
	}
	return got, nil
}
