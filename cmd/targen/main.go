// targen writes a file or directory tree as a ustar archive.
//
// Usage:
//
//	targen [flags] PATH
//
// The archive goes to stdout unless --output is given. Header prefixes are
// computed relative to --base, which defaults to the parent of PATH, so the
// archive contains PATH's final element at its top level.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ltskv/targen"
)

// errCheckFailed is returned when --check finds unencodable entries.
var errCheckFailed = errors.New("tree contains entries that cannot be archived")

type options struct {
	base           string
	output         string
	blockingFactor int
	noTerminator   bool
	check          bool
	size           bool
	strict         bool
	verbose        bool
	logFormat      string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "targen: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("targen", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.base, "base", "", "directory that header prefixes are relative to (default: parent of PATH)")
	flagSet.StringVarP(&opts.output, "output", "o", "-", "write the archive to this file instead of stdout")
	flagSet.IntVarP(&opts.blockingFactor, "blocking-factor", "b", 1, "number of 512-byte blocks read per file I/O")
	flagSet.BoolVar(&opts.noTerminator, "no-terminator", false, "omit the two zero end-of-archive blocks")
	flagSet.BoolVar(&opts.check, "check", false, "only report entries that cannot be archived")
	flagSet.BoolVar(&opts.size, "size", false, "only print the archive size in bytes")
	flagSet.BoolVar(&opts.strict, "strict", false, "fail if a file changes size while it is archived")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log every entry")
	flagSet.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: targen [flags] PATH\n\nFlags:\n%s", flagSet.FlagUsages())
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return fmt.Errorf("expected exactly one PATH, got %d", flagSet.NArg())
	}
	path := flagSet.Arg(0)

	logger, err := newLogger(stderr, opts.logFormat, opts.verbose)
	if err != nil {
		return err
	}

	base := opts.base
	if base == "" {
		base = filepath.Dir(filepath.Clean(path))
	}

	tgOpts := []targen.Option{
		targen.WithLogger(logger),
		targen.WithBlockingFactor(opts.blockingFactor),
	}
	if opts.strict {
		tgOpts = append(tgOpts, targen.WithChangeDetection(targen.ChangeDetectionStrict))
	}
	if opts.noTerminator {
		tgOpts = append(tgOpts, targen.WithoutTerminator())
	}

	switch {
	case opts.size:
		n, err := targen.CalcSize(ctx, path, tgOpts...)
		if err != nil {
			return err
		}
		if !opts.noTerminator {
			n += targen.TerminatorSize
		}
		_, err = fmt.Fprintln(stdout, n)
		return err

	case opts.check:
		ok, err := targen.Check(ctx, path, base, tgOpts...)
		if err != nil {
			return err
		}
		if !ok {
			return errCheckFailed
		}
		logger.Info("all entries can be archived", "path", path)
		return nil

	default:
		return writeArchive(ctx, path, base, opts.output, stdout, tgOpts)
	}
}

// writeArchive streams the archive to stdout or to a file. A partially
// written file is removed when archiving fails.
func writeArchive(ctx context.Context, path, base, output string, stdout io.Writer, opts []targen.Option) error {
	if output == "-" {
		bw := bufio.NewWriterSize(stdout, 64<<10)
		if _, err := targen.Write(ctx, bw, path, base, opts...); err != nil {
			return err
		}
		return bw.Flush()
	}

	f, err := os.Create(output) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	bw := bufio.NewWriterSize(f, 64<<10)
	if _, err := targen.Write(ctx, bw, path, base, opts...); err != nil {
		f.Close()
		os.Remove(output)
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		os.Remove(output)
		return fmt.Errorf("flush output file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(output)
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
