package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc2022/pkg/days"
	"github.com/matzehuels/aoc2022/pkg/puzzle"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := days.Registry(c.Config.Layout())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), daysTable(reg.Days()))
			return err
		},
	}
}

// daysTable renders days as a table with one row per day.
func daysTable(ds []*puzzle.Day) string {
	rows := make([][]string, 0, len(ds))
	for _, d := range ds {
		var parts []string
		for n := 1; n <= 2; n++ {
			if _, err := d.Part(n); err == nil {
				parts = append(parts, strconv.Itoa(n))
			}
		}
		rows = append(rows, []string{strconv.Itoa(d.Number), d.Title, strings.Join(parts, ", ")})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Day", "Title", "Parts").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		})

	return t.Render()
}
