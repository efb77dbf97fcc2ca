package log

import (
	"fmt"

	"charm-walletlist-tui/helpers"
	"charm-walletlist-tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// reservedHeight covers header, nav, panel borders and margins
const reservedHeight = 10

// Height returns the number of log lines shown for a terminal of the given height
func Height(termHeight int) int {
	available := helpers.Max(5, termHeight-reservedHeight)
	return helpers.Min(available, helpers.Min(termHeight/3, 15))
}

// Render renders the log panel
func Render(width, height int, logReady bool, logSpinnerView string, vp viewport.Model) string {
	title := styles.TitleStyle.Render("Log")

	vp.Height = Height(height)

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(vp.Height + 2)

	if !logReady {
		return border.Render(title + "\n\n" + "initializing...\n" + logSpinnerView)
	}

	scrollInfo := ""
	if vp.TotalLineCount() > vp.Height {
		scrollInfo = lipgloss.NewStyle().
			Foreground(styles.CMuted).
			Render(fmt.Sprintf(" [%d%%]", int(vp.ScrollPercent()*100)))
	}

	return border.Render(title + scrollInfo + "\n\n" + vp.View())
}
