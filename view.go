package main

import (
	"fmt"
	"strings"

	"charm-walletlist-tui/helpers"
	"charm-walletlist-tui/styles"
	logview "charm-walletlist-tui/views/log"
	"charm-walletlist-tui/views/qr"
	"charm-walletlist-tui/views/rows"
	"charm-walletlist-tui/walletform"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) globalHeader() string {
	availableWidth := helpers.Max(0, m.w-8)

	titleText := lipgloss.NewStyle().Bold(true).Render(helpers.FadeString("wallet list", "#7EE787", "#82CFFD"))

	count := lipgloss.NewStyle().
		Foreground(cAccent2).
		Bold(true).
		Render(fmt.Sprintf("%d rows", m.form.Len()))

	var stateColor lipgloss.Color
	switch m.importer.State() {
	case walletform.ImportReading:
		stateColor = cWarn
	default:
		stateColor = cAccent
	}
	state := lipgloss.NewStyle().
		Foreground(stateColor).
		Bold(true).
		Render("● import " + m.importer.State().String())

	leftWidth := lipgloss.Width(count)
	rightWidth := lipgloss.Width(state)
	titleWidth := lipgloss.Width(titleText)

	var headerLine string
	if leftWidth+rightWidth+titleWidth+4 > availableWidth {
		headerLine = count + "\n" + titleText + "\n" + state
	} else {
		remaining := availableWidth - leftWidth - rightWidth - titleWidth
		leftPad := remaining / 2
		rightPad := remaining - leftPad
		headerLine = count + strings.Repeat(" ", helpers.Max(1, leftPad)) + titleText + strings.Repeat(" ", helpers.Max(1, rightPad)) + state
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + separator
}

// cells prepares the rows for rendering, swapping in the live inputs for the row being edited
func (m *model) cells() []rows.Cell {
	list := m.form.Rows()
	cells := make([]rows.Cell, len(list))
	for i, r := range list {
		cells[i] = rows.Cell{Row: r}
		if m.editing && i == m.selected {
			cells[i].WalletView = m.walletInput.View()
			cells[i].AmountView = m.amountInput.View()
		}
	}
	return cells
}

func (m *model) statusLine() string {
	if m.status == "" {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(cAccent).Bold(true)
	if m.statusErr {
		style = styles.ErrorStyle.Bold(true)
	}
	return style.Render(m.status)
}

func (m *model) View() string {
	headerPanel := panelStyle.Width(helpers.Max(0, m.w-2)).Render(m.globalHeader())

	var pageContent string
	switch {
	case m.showQR:
		row, _ := m.form.Row(m.selected)
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(qr.Render(row))

	case m.importForm != nil:
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).
			BorderForeground(cAccent2).
			Render(m.importForm.View())

	default:
		total, _ := m.form.Total()
		content := rows.Render(rows.Params{
			Cells:       m.cells(),
			Selected:    m.selected,
			Editing:     m.editing,
			Total:       total,
			ShowTotal:   m.form.ShowTotal(),
			Reading:     m.importer.State() == walletform.ImportReading,
			ReadingPath: m.importer.Path(),
			Spinner:     m.spin.View(),
			Width:       helpers.Max(0, m.w-10),
		})
		if s := m.statusLine(); s != "" {
			content += "\n\n" + s
		}
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(content)
	}

	nav := rows.Nav(helpers.Max(0, m.w-2), m.textInputActive())

	parts := []string{headerPanel, pageContent, nav}
	if m.logEnabled {
		parts = append(parts, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
