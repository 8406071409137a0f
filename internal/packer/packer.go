package packer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxWorkers = 64

type linePacker struct {
	logger  *zap.Logger
	workers int
}

// Option configures a Packer.
type Option func(*linePacker)

// WithLogger sets the logger used to report rejected lines.
func WithLogger(logger *zap.Logger) Option {
	return func(p *linePacker) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithWorkers sets how many lines may be packed concurrently.
// Values below 1 fall back to sequential processing.
func WithWorkers(workers int) Option {
	return func(p *linePacker) {
		p.workers = workers
	}
}

// New creates a Packer that selects items with the greedy heuristic.
func New(opts ...Option) Packer {
	p := &linePacker{
		logger:  zap.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.workers < 1 {
		p.workers = 1
	}
	if p.workers > maxWorkers {
		p.workers = maxWorkers
	}
	return p
}

func (p *linePacker) PackLine(number int, line string) LineResult {
	pkg, ok := ParseLine(line)
	if !ok {
		p.logger.Debug("line rejected by grammar", zap.Int("line", number))
		return LineResult{Number: number}
	}

	candidates := FilterByCapacity(pkg.Candidates, pkg.Capacity)
	return LineResult{
		Number:   number,
		Accepted: true,
		Chosen:   Select(pkg.Capacity, candidates),
	}
}

func (p *linePacker) PackLines(ctx context.Context, lines []string) (Report, error) {
	results := make([]LineResult, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.PackLine(i+1, line)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("pack lines: %w", err)
	}
	return Report{Lines: results}, nil
}
