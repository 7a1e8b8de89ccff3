package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		maxw = max(maxw, lipgloss.Width(ln))
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln, maxw)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// Table draws rows under a header row, columns sized to their widest cell.
// Cells wider than maxCell are truncated with an ellipsis.
func Table(w io.Writer, headers []string, rows [][]string) {
	const maxCell = 48
	t := Current()

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	clipped := make([][]string, len(rows))
	for r, row := range rows {
		clipped[r] = make([]string, len(headers))
		for i := range headers {
			var cell string
			if i < len(row) {
				cell = clip(row[i], maxCell)
			}
			clipped[r][i] = cell
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, cw := range widths {
			parts[i] = strings.Repeat(t.H, cw+2)
		}
		return left + strings.Join(parts, mid) + right
	}
	line := func(cells []string, color string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = " " + C(w, color, pad(c, widths[i])) + " "
		}
		return t.V + strings.Join(parts, t.V) + t.V
	}

	fmt.Fprintln(w, rule(t.CornerTL, t.TeeT, t.CornerTR))
	fmt.Fprintln(w, line(headers, t.Title))
	fmt.Fprintln(w, rule(t.TeeL, t.Cross, t.TeeR))
	for _, row := range clipped {
		fmt.Fprintln(w, line(row, ""))
	}
	fmt.Fprintln(w, rule(t.CornerBL, t.TeeB, t.CornerBR))
}

func pad(s string, width int) string {
	if vis := lipgloss.Width(s); vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	return s
}

func clip(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
