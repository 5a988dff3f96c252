package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	apperr "github.com/matzehuels/aoc2022/pkg/errors"
	"github.com/matzehuels/aoc2022/pkg/pipeline"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	stdinPath = "-"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	input   string // input file, "-" for stdin, empty for <input_dir>/dayN.txt
	output  string // answer format: text, json or yaml
	refresh bool   // ignore cached answers
	noCache bool   // neither read nor write the cache
}

// runCommand creates the run command.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{output: formatText}

	cmd := &cobra.Command{
		Use:   "run <day> [part]",
		Short: "Solve a puzzle",
		Long: `Solve one part of a day, or both when no part is given.

Input is read from --input, from standard input with --input -, or from
<input_dir>/day<N>.txt where input_dir comes from the config file.`,
		Example: `  aoc run 5
  aoc run 5 2 -i day5.txt
  cat day5.txt | aoc run 5 -i - -o json`,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: completeDayPart,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apperr.ValidateOutputFormat(opts.output); err != nil {
				return err
			}
			day, part, err := parseDayPart(args)
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), cmd, day, part, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", `input file ("-" for stdin)`)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output format: text, json, yaml")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if the answer is cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the answer cache")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, cmd *cobra.Command, day, part int, opts *runOpts) error {
	input, err := readInput(opts.input, cmd.InOrStdin(), c.Config.InputDir, day)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	results, err := runner.Execute(ctx, pipeline.Options{
		Day:      day,
		Part:     part,
		Input:    input,
		Variant:  c.variant(day),
		Refresh:  opts.refresh,
		CacheTTL: c.Config.CacheTTL.Duration,
	})
	if err != nil {
		return err
	}
	cached := 0
	for _, r := range results {
		if r.Cached {
			cached++
		}
	}
	prog.done("solved", "day", day, "parts", len(results), "cached", cached)
	return writeResults(cmd.OutOrStdout(), results, opts.output)
}

// parseDayPart parses the positional arguments of run. A missing part is 0,
// meaning both parts.
func parseDayPart(args []string) (day, part int, err error) {
	day, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, apperr.New(apperr.ErrCodeInvalidDay, "day must be a number, got %q", args[0])
	}
	if err := apperr.ValidateDay(day); err != nil {
		return 0, 0, err
	}
	if len(args) < 2 {
		return day, 0, nil
	}
	part, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, apperr.New(apperr.ErrCodeInvalidPart, "part must be 1 or 2, got %q", args[1])
	}
	if err := apperr.ValidatePart(part); err != nil {
		return 0, 0, err
	}
	return day, part, nil
}

// readInput returns the puzzle input from path, stdin, or the default file
// for day under inputDir.
func readInput(path string, stdin io.Reader, inputDir string, day int) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	if path == "" {
		path = filepath.Join(inputDir, fmt.Sprintf("day%d.txt", day))
	} else if err := apperr.ValidateInputPath(path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", apperr.Wrap(apperr.ErrCodeFileNotFound, err, "input %s not found", path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// writeResults writes answers in the requested format.
func writeResults(w io.Writer, results []pipeline.Result, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	default:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, formatResult(r)); err != nil {
				return err
			}
		}
		return nil
	}
}
