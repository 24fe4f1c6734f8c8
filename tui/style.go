package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleGood = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	stylePrompt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindDanger
	kindGood
	kindPrompt
	kindSystem
	kindInput
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "Bad joss!!"),
		strings.Contains(line, "firing on us"),
		strings.Contains(line, "been hit"),
		strings.Contains(line, "going down"):
		return kindDanger
	case strings.HasPrefix(line, "Good joss!!"),
		strings.Contains(line, "booty"),
		strings.Contains(line, "got away"):
		return kindGood
	case strings.HasPrefix(line, "Arriving at"),
		strings.HasPrefix(line, "Castin' off"),
		strings.HasPrefix(line, "Game saved"):
		return kindSystem
	default:
		return kindNarrative
	}
}

func styleFor(kind lineKind) lipgloss.Style {
	switch kind {
	case kindDanger:
		return styleDanger
	case kindGood:
		return styleGood
	case kindPrompt:
		return stylePrompt
	case kindSystem:
		return styleSystem
	case kindInput:
		return stylePlayerInput
	default:
		return styleNarrative
	}
}
