package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/aoc2022/pkg/crane"
	"github.com/matzehuels/aoc2022/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings, crates
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleAnswer for puzzle answers.
	StyleAnswer = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCrate = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// Answers
// =============================================================================

// formatResult renders one answer line:
//
//	day 5 part 1  CMZ  · 412µs · fresh
func formatResult(r pipeline.Result) string {
	status, statusStyle := iconFresh, styleComputed
	if r.Cached {
		status, statusStyle = iconCached, styleCached
	}

	label := fmt.Sprintf("day %d part %d", r.Day, r.Part)
	parts := []string{
		StyleTitle.Render(label),
		StyleAnswer.Render(r.Answer),
	}
	if !r.Cached {
		parts = append(parts, StyleDim.Render(r.Duration.Round(time.Microsecond).String()))
	}
	parts = append(parts, statusStyle.Render(status))
	return strings.Join(parts, StyleDim.Render(" · "))
}

// =============================================================================
// Stacks
// =============================================================================

// formatStacks draws stacks the way puzzle diagrams do, top row first with a
// numbered footer.
func formatStacks(s crane.Stacks) string {
	height := 0
	for _, st := range s {
		height = max(height, len(st))
	}

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		cells := make([]string, len(s))
		for i, st := range s {
			if row < len(st) {
				cells[i] = styleCrate.Render("[" + string(st[row]) + "]")
			} else {
				cells[i] = "   "
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteByte('\n')
	}

	labels := make([]string, len(s))
	for i := range s {
		labels[i] = fmt.Sprintf("%-3s", fmt.Sprintf(" %d", i+1))
	}
	b.WriteString(StyleDim.Render(strings.TrimRight(strings.Join(labels, " "), " ")))
	return b.String()
}
