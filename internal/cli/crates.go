package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc2022/pkg/crane"
)

// cratesOpts holds the command-line flags for the crates command.
type cratesOpts struct {
	input       string // input file, "-" for stdin, empty for <input_dir>/day5.txt
	policy      string // "single" or "block"
	slotWidth   int    // bytes per diagram column
	labelOffset int    // label position inside a column
	show        bool   // draw the final stacks
}

// cratesCommand creates the crates command, which runs the crate simulator
// outside the answer cache.
func (c *CLI) cratesCommand() *cobra.Command {
	var opts cratesOpts

	cmd := &cobra.Command{
		Use:   "crates",
		Short: "Run the crate simulator",
		Long: `Rearrange the stacks of a day 5 input and print the top crate of each stack.

The policy selects how a move behaves: "single" lifts one crate at a time,
"block" lifts the whole group at once and keeps its order.`,
		Example: `  aoc crates --policy block --show
  aoc crates -i day5.txt --slot-width 6 --label-offset 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags left unset fall back to the config file.
			if !cmd.Flags().Changed("policy") {
				opts.policy = c.Config.Crates.Policy
			}
			if !cmd.Flags().Changed("slot-width") {
				opts.slotWidth = c.Config.Crates.SlotWidth
			}
			if !cmd.Flags().Changed("label-offset") {
				opts.labelOffset = c.Config.Crates.LabelOffset
			}
			return c.runCrates(cmd.Context(), cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", `input file ("-" for stdin)`)
	cmd.Flags().StringVarP(&opts.policy, "policy", "p", crane.SingleCrate.String(), "move policy: single, block")
	cmd.Flags().IntVar(&opts.slotWidth, "slot-width", crane.DefaultLayout.SlotWidth, "width of one diagram column")
	cmd.Flags().IntVar(&opts.labelOffset, "label-offset", crane.DefaultLayout.LabelOffset, "offset of the crate label inside a column")
	cmd.Flags().BoolVar(&opts.show, "show", false, "draw the final stacks")
	_ = cmd.RegisterFlagCompletionFunc("policy", completePolicy)

	return cmd
}

func (c *CLI) runCrates(ctx context.Context, cmd *cobra.Command, opts *cratesOpts) error {
	logger := loggerFromContext(ctx)

	policy, err := crane.ParsePolicy(opts.policy)
	if err != nil {
		return err
	}
	layout := crane.DefaultLayout
	layout.SlotWidth = opts.slotWidth
	layout.LabelOffset = opts.labelOffset
	if err := layout.Validate(); err != nil {
		return err
	}

	input, err := readInput(opts.input, cmd.InOrStdin(), c.Config.InputDir, 5)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	parsed, err := crane.Parse(input, layout)
	if err != nil {
		return err
	}
	logger.Debug("parsed input", "stacks", len(parsed.Stacks), "crates", parsed.Stacks.Height(), "moves", len(parsed.Moves))

	cr := crane.New(parsed.Stacks, policy)
	if err := cr.Run(parsed.Moves); err != nil {
		return err
	}
	prog.done("rearranged crates", "moves", len(parsed.Moves), "policy", policy.String(), "stacks", len(parsed.Stacks))

	return writeCrates(cmd.OutOrStdout(), cr, opts.show)
}

// writeCrates prints the top crates, preceded by the drawn stacks if show is
// set.
func writeCrates(w io.Writer, cr *crane.Crane, show bool) error {
	if show {
		if _, err := fmt.Fprintln(w, formatStacks(cr.Stacks())); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	_, err := fmt.Fprintln(w, StyleAnswer.Render(cr.Tops()))
	return err
}
