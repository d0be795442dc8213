package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/heatgrid/pkg/pipeline"
)

// ANSI 256 palette shared by status lines, tables and log badges.
const (
	ColorAccent = lipgloss.Color("36")
	ColorGreen  = lipgloss.Color("35")
	ColorBlue   = lipgloss.Color("39")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("203")
	ColorWhite  = lipgloss.Color("255")
	ColorGray   = lipgloss.Color("245")
	ColorDim    = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(ColorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(ColorWhite)
	StyleWarning   = lipgloss.NewStyle().Foreground(ColorYellow)

	styleIconSpinner = lipgloss.NewStyle().Foreground(ColorAccent)
)

// Leading markers for one-line status messages.
var (
	markOK   = lipgloss.NewStyle().Foreground(ColorGreen).Render("✓")
	markInfo = lipgloss.NewStyle().Foreground(ColorGray).Render("›")
	markFile = StyleDim.Render("→")
)

func printSuccess(format string, args ...any) {
	fmt.Println(markOK, fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Println(markInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under a status message.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  "+markFile, StyleValue.Render(path))
}

func printStats(s pipeline.Stats, cached bool) {
	fmt.Println(statsLine(s, cached))
}

// statsLine summarizes a render as "12 points · 4×3 cells · 640×480 px · fresh".
// Zero-valued figures are left out.
func statsLine(s pipeline.Stats, cached bool) string {
	var parts []string
	add := func(ok bool, format string, args ...any) {
		if ok {
			parts = append(parts, StyleDim.Render(fmt.Sprintf(format, args...)))
		}
	}
	add(s.Points > 0, "%d points", s.Points)
	add(s.Columns > 0 && s.Rows > 0, "%d×%d cells", s.Columns, s.Rows)
	add(s.Width > 0 && s.Height > 0, "%d×%d px", s.Width, s.Height)

	if cached {
		parts = append(parts, lipgloss.NewStyle().Foreground(ColorGreen).Render("cached"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(ColorGray).Render("fresh"))
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}
