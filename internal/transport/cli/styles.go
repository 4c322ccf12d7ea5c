package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// styles collects the few visual treatments the REPL uses. ANSI palette
// indices are used instead of fixed hex values so the terminal's own theme
// decides the actual colors.
type styles struct {
	prompt lipgloss.Style
	err    lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		return styles{
			prompt: lipgloss.NewStyle(),
			err:    lipgloss.NewStyle(),
		}
	}
	return styles{
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
