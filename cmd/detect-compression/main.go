// Command detect-compression inspects, decompresses, and converts compressed
// files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quay/zlog"
	"github.com/rs/zerolog"
)

type commonConfig struct {
	// Jobs bounds how many files are processed concurrently.
	Jobs int
}

type subcmd func(context.Context, *commonConfig, []string) error

func main() {
	var exit int
	defer func() {
		if exit != 0 {
			os.Exit(exit)
		}
	}()
	ctx, done := context.WithCancel(context.Background())
	defer done()
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		<-ch
		done()
	}()

	var cfg commonConfig
	fs := flag.NewFlagSet("main", flag.ExitOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nSubcommands\n\n")
		fmt.Fprintln(out, "detect")
		fmt.Fprintln(out, "\treport the compression format of the named files")
		fmt.Fprintln(out, "cat")
		fmt.Fprintln(out, "\tdecompress the named files to stdout")
		fmt.Fprintln(out, "recompress")
		fmt.Fprintln(out, "\trewrite the named files with a different compression")
		fmt.Fprintln(out)
	}
	fs.IntVar(&cfg.Jobs, "j", 4, "number of files to process concurrently")
	debug := fs.Bool("D", false, "enable debug logging")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exit = 1
		return
	}

	lvl := zerolog.InfoLevel
	if *debug {
		lvl = zerolog.DebugLevel
	}
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
	zlog.Set(&l)

	args := fs.Args()
	if len(args) == 0 {
		fs.Usage()
		exit = 1
		return
	}
	var cmd subcmd
	switch n := args[0]; n {
	case "detect":
		cmd = detectCmd
	case "cat":
		cmd = catCmd
	case "recompress":
		cmd = recompressCmd
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", n)
		exit = 1
		return
	}
	if err := cmd(ctx, &cfg, args[1:]); err != nil {
		zlog.Error(ctx).Err(err).Msg("exiting")
		exit = 1
	}
}
