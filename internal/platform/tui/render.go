package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawOverlay draws the title, loading and game over panels on top of the
// playfield. Nothing is drawn while a run is in progress.
func (m Model) drawOverlay(snap flappy.Snapshot) {
	var lines []string
	switch {
	case !snap.Loaded:
		done, total := m.tracker.Progress()
		lines = []string{
			"F L A P P Y",
			"",
			fmt.Sprintf("%s loading assets %d/%d", m.spinner.View(), done, total),
		}
	case snap.State == flappy.StateIdle:
		lines = []string{
			"F L A P P Y",
			"",
			"[ enter: start ]",
			"space / up / click to flap",
		}
	case snap.GameOver:
		lines = []string{
			"G A M E   O V E R",
			"",
			fmt.Sprintf("score %d", snap.Score),
			"[ enter: play again ]",
		}
	default:
		return
	}
	drawPanel(m.screen, lines)
}

// drawPanel draws lines centered in a bordered box in the middle of s.
func drawPanel(s *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	boxW, boxH := width+4, len(lines)+2
	if boxW > s.Width() || boxH > s.Height() {
		for i, l := range lines {
			s.DrawTextCentered(i, l)
		}
		return
	}

	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2
	s.FillRect(x, y, x+boxW, y+boxH, ' ', core.ColorDefault)
	s.DrawBox(x, y, boxW, boxH)
	for i, l := range lines {
		pad := (width - lipgloss.Width(l)) / 2
		s.DrawTextColored(x+2+pad, y+1+i, l, core.ColorBrightWhite)
	}
}
