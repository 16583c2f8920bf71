package nbtutil

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/codec"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// A CheckResult reports the outcome of decoding one file.
type CheckResult struct {
	Path        string
	Compression codec.Compression
	Entries     int
	Err         error
}

func (r CheckResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("FAIL %s: %v", r.Path, r.Err)
	}
	return fmt.Sprintf("ok   %s (%s, %d entries)", r.Path, r.Compression, r.Entries)
}

// CheckFiles decodes every file in parallel, at most jobs at a time, and
// returns one result per path, in the same order. A decoding failure is
// reported in its result, the returned error is only set if the context
// is canceled.
func CheckFiles(ctx context.Context, paths []string, jobs int) ([]CheckResult, error) {
	results := make([]CheckResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := CheckResult{Path: path}
			c, compression, err := DecodeFile(path)
			if err != nil {
				res.Err = err
			} else {
				res.Compression = compression
				res.Entries = c.Len()
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WriteCheckReport writes one line per result to w and returns an error
// combining every failure.
func WriteCheckReport(w io.Writer, results []CheckResult) error {
	var errs error

	for _, r := range results {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
		if r.Err != nil {
			errs = multierr.Append(errs, errors.Wrapf(r.Err, "%s", r.Path))
		}
	}

	if errs != nil {
		return errors.Wrapf(errs, "%d of %d files failed", len(multierr.Errors(errs)), len(results))
	}
	return nil
}
