// Package pipeline runs puzzle solvers with answer caching, timing and hooks.
//
// A [Runner] looks a day up in a [puzzle.Registry], keys the answer by day,
// part and a hash of the input, and only calls the solver on a cache miss.
//
// # Usage
//
//	runner := pipeline.NewRunner(reg, cache, nil, logger)
//	results, err := runner.Execute(ctx, pipeline.Options{
//	    Day:   5,
//	    Input: input,
//	})
//	for _, r := range results {
//	    fmt.Println(r.Part, r.Answer)
//	}
//
// A failed part aborts the run: Execute returns the error and no results.
package pipeline

import (
	"time"

	"github.com/matzehuels/aoc2022/pkg/cache"
	apperr "github.com/matzehuels/aoc2022/pkg/errors"
)

// DefaultCacheTTL is how long answers stay cached. Answers for a given input
// never change, so the TTL only bounds disk usage.
const DefaultCacheTTL = 30 * 24 * time.Hour

// Options controls a single run.
type Options struct {
	// Day is the puzzle day to solve.
	Day int `json:"day"`

	// Part selects part 1 or 2; 0 runs both.
	Part int `json:"part,omitempty"`

	// Input is the raw puzzle input.
	Input string `json:"-"`

	// Variant distinguishes solver settings that change the answer for the
	// same input (for example a non-default crate layout).
	Variant string `json:"variant,omitempty"`

	// Refresh bypasses cached answers but still stores the new ones.
	Refresh bool `json:"refresh,omitempty"`

	// CacheTTL overrides DefaultCacheTTL when positive.
	CacheTTL time.Duration `json:"-"`
}

// Parts returns the parts selected by o.
func (o *Options) Parts() []int {
	if o.Part == 0 {
		return []int{1, 2}
	}
	return []int{o.Part}
}

// Validate checks the day and part.
func (o *Options) Validate() error {
	if err := apperr.ValidateDay(o.Day); err != nil {
		return err
	}
	if o.Part != 0 {
		return apperr.ValidatePart(o.Part)
	}
	return nil
}

// ttl returns the effective cache TTL.
func (o *Options) ttl() time.Duration {
	if o.CacheTTL > 0 {
		return o.CacheTTL
	}
	return DefaultCacheTTL
}

// keyOpts returns the cache key options for o.
func (o *Options) keyOpts() cache.AnswerKeyOpts {
	return cache.AnswerKeyOpts{Variant: o.Variant}
}

// Result is the answer to one part.
type Result struct {
	Day      int           `json:"day" yaml:"day"`
	Part     int           `json:"part" yaml:"part"`
	Title    string        `json:"title" yaml:"title"`
	Answer   string        `json:"answer" yaml:"answer"`
	Duration time.Duration `json:"duration_ns" yaml:"duration"`
	Cached   bool          `json:"cached" yaml:"cached"`
}
