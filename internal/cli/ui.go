package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wordladder/pkg/ladder"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// ui writes human-facing status lines. Results go to the command's stdout;
// everything here goes to the status writer, stderr when run from main.
type ui struct {
	w io.Writer
}

func (u *ui) printf(icon string, style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(u.w, style.Render(icon)+" "+fmt.Sprintf(format, args...))
}

func (u *ui) success(format string, args ...any) {
	u.printf(iconSuccess, styleIconSuccess, format, args...)
}

func (u *ui) warn(format string, args ...any) {
	u.printf(iconWarning, styleIconWarning, format, args...)
}

func (u *ui) info(format string, args ...any) {
	u.printf(iconInfo, styleIconInfo, format, args...)
}

// detail prints an indented, dimmed line under the previous message.
func (u *ui) detail(format string, args ...any) {
	fmt.Fprintln(u.w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

func (u *ui) file(path string) {
	fmt.Fprintln(u.w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func (u *ui) keyValue(key, value string) {
	fmt.Fprintln(u.w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// stats prints word and edge counts and whether the result came from the
// cache. Zero edges are omitted.
func (u *ui) stats(words, edges int, cached bool) {
	parts := []string{fmt.Sprintf("%d words", words)}
	if edges > 0 {
		parts = append(parts, fmt.Sprintf("%d edges", edges))
	}
	status := styleComputed.Render("fresh")
	if cached {
		status = styleCached.Render("cached")
	}
	fmt.Fprintln(u.w, "  "+styleDim.Render(strings.Join(parts, " · ")+" · ")+status)
}

// pairs lists word pairs under a counted heading. Nothing is printed for
// an empty list.
func (u *ui) pairs(label string, pairs []ladder.Pair) {
	if len(pairs) == 0 {
		return
	}
	u.info("%s pairs: %d", label, len(pairs))
	for _, p := range pairs {
		u.detail("%s - %s", p.A, p.B)
	}
}

func (u *ui) nextStep(description, cmd string) {
	fmt.Fprintln(u.w, styleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// inline prints a dimmed message without a trailing newline.
func (u *ui) inline(format string, args ...any) {
	fmt.Fprint(u.w, styleDim.Render(fmt.Sprintf(format, args...)))
}

func (u *ui) newline() {
	fmt.Fprintln(u.w)
}
