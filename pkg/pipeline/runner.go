package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/aoc2022/pkg/cache"
	"github.com/matzehuels/aoc2022/pkg/observability"
	"github.com/matzehuels/aoc2022/pkg/puzzle"
)

// Runner solves puzzles through an answer cache.
//
// The Runner is stateless except for its collaborators, so one Runner can
// serve any number of sequential runs.
type Runner struct {
	Registry *puzzle.Registry
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
}

// NewRunner creates a runner.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(reg *puzzle.Registry, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Registry: reg,
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
	}
}

// Execute solves the selected parts of opts.Day in order.
func (r *Runner) Execute(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	day, err := r.Registry.Lookup(opts.Day)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, 2)
	for _, part := range opts.Parts() {
		solve, err := day.Part(part)
		if err != nil {
			return nil, err
		}
		res, err := r.Solve(ctx, day, part, solve, opts)
		if err != nil {
			return nil, fmt.Errorf("%s part %d: %w", day.Name(), part, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Solve runs one solver, consulting the cache first unless opts.Refresh is
// set. Only successful answers are cached.
func (r *Runner) Solve(ctx context.Context, day *puzzle.Day, part int, solve puzzle.Solver, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res := Result{Day: day.Number, Part: part, Title: day.Title}

	key := r.Keyer.AnswerKey(day.Number, part, cache.Hash([]byte(opts.Input)), opts.keyOpts())
	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "err", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, key)
			res.Answer, res.Cached = string(data), true
			return res, nil
		default:
			observability.Cache().OnCacheMiss(ctx, key)
		}
	}

	hooks := observability.Solver()
	hooks.OnSolveStart(ctx, day.Number, part)
	start := time.Now()
	answer, err := solve(opts.Input)
	res.Duration = time.Since(start)
	hooks.OnSolveComplete(ctx, day.Number, part, res.Duration, err)
	if err != nil {
		return Result{}, err
	}
	res.Answer = answer

	r.Logger.Debug("computed answer", "day", day.Number, "part", part, "duration", res.Duration)

	if err := r.Cache.Set(ctx, key, []byte(answer), opts.ttl()); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, key, len(answer))
	}
	return res, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
