package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"pyfront/internal/config"
)

// CheckDir converts every raw-tree dump under dir in parallel. Results
// come back in the sorted file order regardless of completion order.
// jobs <= 0 means one worker per CPU.
func CheckDir(ctx context.Context, dir string, cfg config.Config, cache *DiskCache, jobs int) ([]FileCheck, error) {
	files, err := ListDumpFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Slots are per-goroutine unique, no mutex needed.
	results := make([]FileCheck, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fc, err := CheckFile(path, cfg, cache)
			if err != nil {
				return err
			}
			results[i] = fc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
