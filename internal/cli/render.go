package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named terminal color palette.
type Theme struct {
	Name      string
	Border    lipgloss.Color
	TextDim   lipgloss.Color
	TextMuted lipgloss.Color
	Text      lipgloss.Color
	Accent    lipgloss.Color
	Green     lipgloss.Color
	Orange    lipgloss.Color
	Red       lipgloss.Color
	Blue      lipgloss.Color
}

// Built-in palettes. The first entry is the default.
var themes = []Theme{
	{
		Name:      "flexoki-dark",
		Border:    "#282726",
		TextDim:   "#575653",
		TextMuted: "#6F6E69",
		Text:      "#FFFCF0",
		Accent:    "#3AA99F",
		Green:     "#879A39",
		Orange:    "#DA702C",
		Red:       "#D14D41",
		Blue:      "#4385BE",
	},
	{
		Name:      "flexoki-light",
		Border:    "#E6E4D9",
		TextDim:   "#B7B5AC",
		TextMuted: "#6F6E69",
		Text:      "#100F0F",
		Accent:    "#24837B",
		Green:     "#66800B",
		Orange:    "#BC5215",
		Red:       "#AF3029",
		Blue:      "#205EA6",
	},
}

// ThemeNames lists the available palettes in order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// Active theme colors, reassigned by SetTheme.
var (
	ColorBorder    lipgloss.Color
	ColorTextDim   lipgloss.Color
	ColorTextMuted lipgloss.Color
	ColorText      lipgloss.Color
	ColorAccent    lipgloss.Color
	ColorGreen     lipgloss.Color
	ColorOrange    lipgloss.Color
	ColorRed       lipgloss.Color
	ColorBlue      lipgloss.Color
)

var (
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	valueStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
	dimStyle    lipgloss.Style
	okStyle     lipgloss.Style
	warnStyle   lipgloss.Style
	dangerStyle lipgloss.Style
)

func init() {
	applyTheme(themes[0])
}

// SetTheme activates the named palette. Unknown names keep the current
// theme so a stale config value degrades gracefully.
func SetTheme(name string) {
	for _, t := range themes {
		if t.Name == name {
			applyTheme(t)
			return
		}
	}
}

func applyTheme(t Theme) {
	ColorBorder = t.Border
	ColorTextDim = t.TextDim
	ColorTextMuted = t.TextMuted
	ColorText = t.Text
	ColorAccent = t.Accent
	ColorGreen = t.Green
	ColorOrange = t.Orange
	ColorRed = t.Red
	ColorBlue = t.Blue

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)
	valueStyle = lipgloss.NewStyle().
		Foreground(ColorText)
	mutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
	dimStyle = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	okStyle = lipgloss.NewStyle().
		Foreground(ColorGreen)
	warnStyle = lipgloss.NewStyle().
		Foreground(ColorOrange)
	dangerStyle = lipgloss.NewStyle().
		Foreground(ColorRed)
}

// StatusStyle returns the style for a severity keyword: "ok", "warn" or
// "danger".
func StatusStyle(severity string) lipgloss.Style {
	switch severity {
	case "ok":
		return okStyle
	case "warn":
		return warnStyle
	case "danger":
		return dangerStyle
	}
	return valueStyle
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A single-cell
// row containing "---" renders as a separator line.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if lipgloss.Width(h) > widths[i] {
				widths[i] = lipgloss.Width(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	writeBorder := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeBorder("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			padded := fmt.Sprintf(" %-*s ", widths[i], h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		writeBorder("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			writeBorder("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first). Pad by
			// rendered width so styled cells stay aligned.
			padN := w - lipgloss.Width(cell)
			if padN < 0 {
				padN = 0
			}
			pad := strings.Repeat(" ", padN)
			if i == 0 {
				b.WriteString(valueStyle.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(valueStyle.Render(" " + pad + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	writeBorder("╰", "┴", "╯")

	return b.String()
}

// RenderProgressBar renders a labeled progress bar for a 0..1 fraction.
func RenderProgressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", mutedStyle.Render(bar), FormatShare(fraction))
}

// RenderSparkline generates a unicode block sparkline from a series of
// values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}
