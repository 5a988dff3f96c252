// Package pkg provides the libraries behind the aoc command.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Solvers: [crane] (the crate-stack simulator) and days/dayN, one package
//     per puzzle, each exporting a [puzzle.Day]
//  2. Infrastructure: [cache], [observability], [errors], [buildinfo]
//  3. Orchestration: [pipeline] (look up a day, consult the cache, solve)
//
// # Architecture
//
//	puzzle input
//	     ↓
//	[puzzle] registry (day number → solvers)
//	     ↓
//	[pipeline] runner (answer cache, timing, hooks)
//	     ↓
//	answer (text, JSON or YAML)
//
// # Quick Start
//
// Solve day 5 without the CLI:
//
//	import (
//	    "github.com/matzehuels/aoc2022/pkg/crane"
//	)
//
//	answer, err := crane.Solve(input, crane.DefaultLayout, crane.BlockMove)
//
// Or through the runner, with caching:
//
//	reg, _ := days.Registry(crane.DefaultLayout)
//	runner := pipeline.NewRunner(reg, cache.NewMemoryCache(), nil, logger)
//	results, err := runner.Execute(ctx, pipeline.Options{Day: 5, Input: input})
//
// Every solver is a pure function of its input string. Failures carry a code
// from [errors]: PARSE_ERROR for text that does not match the puzzle grammar
// and MALFORMED_STATE for well-formed instructions that cannot be carried out.
package pkg
