package hamiltonian

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fockspace"
)

type buildOptions struct {
	concurrency int
	logger      *fockspace.Logger
	filter      func(fockspace.Fillings) bool
}

// BuildOption configures BuildAll.
type BuildOption func(*buildOptions)

// WithConcurrency bounds the number of sectors built at once.
// Values below one use GOMAXPROCS.
func WithConcurrency(n int) BuildOption {
	return func(o *buildOptions) {
		o.concurrency = n
	}
}

// WithBuildLogger sets the logger used to report built sectors.
func WithBuildLogger(l *fockspace.Logger) BuildOption {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSectorFilter restricts BuildAll to sectors for which keep returns true.
func WithSectorFilter(keep func(fockspace.Fillings) bool) BuildOption {
	return func(o *buildOptions) {
		o.filter = keep
	}
}

// BuildAll assembles the Hubbard operator of every sector of basis.
// The first error cancels the remaining work.
func BuildAll(ctx context.Context, basis *fockspace.FockBasis, m HubbardModel, bonds []Bond, optFns ...BuildOption) (map[fockspace.Fillings]*Operator, error) {
	o := buildOptions{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      fockspace.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	var (
		mu  sync.Mutex
		out = make(map[fockspace.Fillings]*Operator)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for sector := range basis.Sectors() {
		f := sector.Filling()
		if o.filter != nil && !o.filter(f) {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			op, err := Hubbard(sector, m, bonds)
			if err != nil {
				return err
			}
			o.logger.WithFillings(f).Debug("operator built",
				"size", op.Size,
				"nnz", op.NNZ(),
				"duration", time.Since(start),
			)
			mu.Lock()
			out[f] = op
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
