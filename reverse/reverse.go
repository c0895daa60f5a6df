// Package reverse reverses the order of the lines of text files by
// pushing them through a [dlist.Deque].
package reverse

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"deedles.dev/dlist"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
)

const (
	defaultRetries = 5
	defaultBackoff = 100 * time.Millisecond
)

// Lines copies the lines of r to w in reverse order. Lines keep their
// line endings. If the last line of r has no trailing newline, one is
// added to it so that it doesn't run into the line that follows it in
// the output.
func Lines(r io.Reader, w io.Writer) error {
	_, err := lines(r, w)
	return err
}

func lines(r io.Reader, w io.Writer) (int, error) {
	var d dlist.Deque
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			d.Append(dlist.Text(line))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	count := d.Len()
	bw := bufio.NewWriter(w)
	for first := true; ; first = false {
		v, err := d.Pop()
		if errors.Is(err, dlist.ErrEmptyContainer) {
			break
		}
		if err != nil {
			return 0, err
		}

		line := string(v.(dlist.Text))
		if first && !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		if _, err := bw.WriteString(line); err != nil {
			return 0, err
		}
	}

	return count, bw.Flush()
}

// Reverser reverses files. The zero value is ready to use.
type Reverser struct {
	// Concurrency is the maximum number of files that Files will
	// reverse at once. Zero means no limit.
	Concurrency int

	// Retries is the number of times to retry moving a finished
	// output file into place. Zero means 5.
	Retries uint64

	// Backoff is the base of the Fibonacci backoff between retries.
	// Zero means 100ms.
	Backoff time.Duration
}

// Job is a single file to be reversed by [Reverser.Files].
type Job struct {
	In, Out string
}

// File writes the lines of the file at in to the file at out in
// reverse order. The output is written to a temporary file in the
// same directory and then moved into place, so out is either
// completely replaced or not touched at all. If out already exists,
// its permissions are kept.
func (rv Reverser) File(ctx context.Context, in, out string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	slog.Debug("reversing file", "in", in, "out", out)

	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("reverse %v: %w", in, err)
	}
	defer src.Close()

	tmp := filepath.Join(filepath.Dir(out), "."+filepath.Base(out)+"."+uuid.NewString()+".tmp")
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(out); err == nil {
		perm = info.Mode().Perm()
	}

	dst, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("reverse %v: %w", in, err)
	}
	defer func() {
		if err != nil {
			dst.Close()
			os.Remove(tmp)
		}
	}()

	// OpenFile's mode is filtered by the umask, so an existing out's
	// permissions have to be restored explicitly.
	if err = dst.Chmod(perm); err != nil {
		return fmt.Errorf("reverse %v: %w", in, err)
	}

	count, err := lines(src, dst)
	if err != nil {
		return fmt.Errorf("reverse %v: %w", in, err)
	}
	if err = dst.Sync(); err != nil {
		return fmt.Errorf("reverse %v: %w", in, err)
	}
	if err = dst.Close(); err != nil {
		return fmt.Errorf("reverse %v: %w", in, err)
	}

	err = rv.retry(ctx, func(context.Context) error {
		return os.Rename(tmp, out)
	})
	if err != nil {
		return fmt.Errorf("reverse %v: %w", in, err)
	}

	slog.Debug("reversed file", "in", in, "out", out, "lines", count)
	return nil
}

// Files reverses each job's file concurrently, limited by
// rv.Concurrency. It returns the first error encountered, after
// which jobs that haven't started yet are skipped.
func (rv Reverser) Files(ctx context.Context, jobs ...Job) error {
	eg, ctx := errgroup.WithContext(ctx)
	if rv.Concurrency > 0 {
		eg.SetLimit(rv.Concurrency)
	}

	for _, job := range jobs {
		eg.Go(func() error {
			return rv.File(ctx, job.In, job.Out)
		})
	}
	return eg.Wait()
}

func (rv Reverser) retry(ctx context.Context, task func(context.Context) error) error {
	retries := rv.Retries
	if retries == 0 {
		retries = defaultRetries
	}
	base := rv.Backoff
	if base <= 0 {
		base = defaultBackoff
	}

	var attempts int
	b := retry.WithMaxRetries(retries, retry.NewFibonacci(base))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempts++
		err := task(ctx)
		if ShouldRetry(err) {
			slog.Debug("retrying", "attempt", attempts, "err", err)
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil && attempts > 1 {
		slog.Warn("gave up", "attempts", attempts, "err", err)
	}
	return err
}
