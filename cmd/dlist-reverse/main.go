// Command dlist-reverse reverses the order of the lines in text
// files.
//
// Usage:
//
//	dlist-reverse [flags] [file ...]
//
// With no files, standard input is reversed to standard output.
// Otherwise, each file is reversed into a file of the same name with
// the suffix given by -suffix appended, or into the file given by -o
// if there is exactly one input.
//
// The log level can be set with the DLIST_LOG_LEVEL environment
// variable to one of DEBUG, INFO, WARN, or ERROR.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"deedles.dev/dlist/reverse"
)

var logLevel = new(slog.LevelVar)

func configureLogging(w io.Writer, level string) {
	switch level {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

type config struct {
	out         string
	suffix      string
	concurrency int
	retries     uint64
	backoff     time.Duration
	files       []string
}

var errUsage = errors.New("usage error")

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var c config

	fset := flag.NewFlagSet("dlist-reverse", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %v [flags] [file ...]\n", fset.Name())
		fset.PrintDefaults()
	}
	fset.StringVar(&c.out, "o", "", "output `path`, only valid with a single input file")
	fset.StringVar(&c.suffix, "suffix", ".rev", "suffix appended to input file names to form output file names")
	fset.IntVar(&c.concurrency, "j", 0, "maximum number of files to reverse at once, 0 for no limit")
	fset.Uint64Var(&c.retries, "retries", 0, "times to retry moving an output file into place, 0 for the default")
	fset.DurationVar(&c.backoff, "backoff", 0, "base backoff between retries, 0 for the default")
	if err := fset.Parse(args); err != nil {
		return c, err
	}
	c.files = fset.Args()

	if c.out != "" && len(c.files) != 1 {
		fmt.Fprintln(stderr, "-o requires exactly one input file")
		return c, errUsage
	}
	if c.out == "" && c.suffix == "" && len(c.files) > 0 {
		fmt.Fprintln(stderr, "-suffix must not be empty")
		return c, errUsage
	}
	if c.concurrency < 0 {
		fmt.Fprintln(stderr, "-j must not be negative")
		return c, errUsage
	}

	return c, nil
}

func (c config) jobs() []reverse.Job {
	if c.out != "" {
		return []reverse.Job{{In: c.files[0], Out: c.out}}
	}

	jobs := make([]reverse.Job, 0, len(c.files))
	for _, f := range c.files {
		jobs = append(jobs, reverse.Job{In: f, Out: f + c.suffix})
	}
	return jobs
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if len(c.files) == 0 {
		if err := reverse.Lines(stdin, stdout); err != nil {
			slog.Error("reverse standard input", "err", err)
			return 1
		}
		return 0
	}

	rv := reverse.Reverser{
		Concurrency: c.concurrency,
		Retries:     c.retries,
		Backoff:     c.backoff,
	}
	jobs := c.jobs()
	if err := rv.Files(ctx, jobs...); err != nil {
		slog.Error("reverse files", "err", err)
		return 1
	}

	slog.Info("reversed files", "count", len(jobs))
	return 0
}

func main() {
	configureLogging(os.Stderr, os.Getenv("DLIST_LOG_LEVEL"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
