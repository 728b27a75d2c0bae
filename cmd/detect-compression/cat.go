package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/quay/zlog"

	detect "github.com/IgaguriMK/detect-compression"
)

// catCmd decompresses the named files to stdout, in order.
func catCmd(ctx context.Context, _ *commonConfig, args []string) error {
	ctx = zlog.ContextWithValues(ctx, "component", "main.catCmd")
	fs := flag.NewFlagSet("cat", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("no files named")
	}

	for _, name := range fs.Args() {
		if err := ctx.Err(); err != nil {
			return err
		}
		z, err := detect.OpenFile(name)
		if err != nil {
			return err
		}
		n, err := io.Copy(os.Stdout, z)
		if cerr := z.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		zlog.Debug(ctx).
			Str("file", name).
			Stringer("format", z.Format()).
			Int64("size", n).
			Msg("wrote contents")
	}
	return nil
}
