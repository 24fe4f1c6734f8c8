package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nathoo/taipan/types"
)

// renderStatusBar produces a full-width inverted status line showing
// the firm, location, money, ship condition, and date.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	left := fmt.Sprintf(" %s | %s", s.Firm, types.PortNames[s.Location])
	right := fmt.Sprintf("%d/%d ", s.Month, s.Year)

	money := fmt.Sprintf("Cash %s | Bank %s | Debt %s | Guns %d | Dmg %d%% | %d/%d ",
		humanize.Comma(int64(s.Cash)),
		humanize.Comma(int64(s.Bank)),
		humanize.Comma(int64(s.Debt)),
		s.Guns, s.Damage, s.Month, s.Year)
	if lipgloss.Width(left)+lipgloss.Width(money)+2 < m.width {
		right = money
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
