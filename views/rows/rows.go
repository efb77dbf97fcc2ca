package rows

import (
	"fmt"
	"strings"

	"charm-walletlist-tui/helpers"
	"charm-walletlist-tui/styles"
	"charm-walletlist-tui/walletform"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one wallet row prepared for rendering.
// WalletView and AmountView hold the already rendered text inputs.
type Cell struct {
	Row        walletform.Row
	WalletView string
	AmountView string
}

// Params carries everything the wallet form view needs
type Params struct {
	Cells       []Cell
	Selected    int
	Editing     bool
	Total       float64
	ShowTotal   bool
	Reading     bool
	ReadingPath string
	Spinner     string
	Width       int
}

// Nav returns the navigation bar for the wallet form
func Nav(width int, editing bool) string {
	var left string
	if editing {
		left = strings.Join([]string{
			styles.Key("Tab") + " next field",
			styles.Key("Ctrl+v") + " paste",
			styles.Key("Enter/Esc") + " done",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " move",
			styles.Key("Enter") + " edit",
			styles.Key("a") + " add row",
			styles.Key("d") + " remove row",
			styles.Key("i") + " import",
			styles.Key("p") + " paste file",
			styles.Key("y") + " copy",
			styles.Key("r") + " QR",
			styles.Key("l") + " debug log",
			styles.Key("q") + " quit",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}

// Dropzone renders the drop target banner
func Dropzone(width int, reading bool, path, spinner string) string {
	text := "Drop a file here or press " + styles.Key("i") + " to choose one"
	if reading {
		text = spinner + " Reading " + helpers.ShortenAddr(path) + "…"
	}
	return styles.DropzoneStyle.Width(helpers.Max(0, width)).Render(text)
}

// Render renders the row list, the add-row button and the total line
func Render(p Params) string {
	var lines []string

	lines = append(lines, Dropzone(p.Width, p.Reading, p.ReadingPath, p.Spinner), "")

	if len(p.Cells) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("No rows yet. Press 'a' to add one."))
	}

	for i, c := range p.Cells {
		lines = append(lines, renderRow(i, c, i == p.Selected, p.Editing && i == p.Selected))
	}

	lines = append(lines, "")
	addButton := styles.ButtonStyle.Render("+ Add Row")
	if p.Selected == len(p.Cells) {
		addButton = styles.ActiveButtonStyle.Render("+ Add Row")
	}
	lines = append(lines, addButton)

	if p.ShowTotal {
		lines = append(lines, "", TotalLine(p.Total))
	}

	return strings.Join(lines, "\n")
}

// TotalLine renders the running total, always denominated in USDT
func TotalLine(total float64) string {
	label := styles.TitleStyle.Render("Total")
	return label + " " + styles.CurrencyStyle.Render(helpers.FormatTotal(total)+" USDT")
}

func renderRow(idx int, c Cell, selected, editing bool) string {
	marker := "  "
	removeStyle := lipgloss.NewStyle().Foreground(styles.CMuted)
	if selected {
		marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
		removeStyle = removeStyle.Foreground(styles.CWarn)
	}

	wallet := c.WalletView
	amount := c.AmountView
	if !editing {
		wallet = placeholder(c.Row.Wallet, "wallet address")
		amount = placeholder(c.Row.Amount, "amount")
	}

	hint := ""
	if helpers.IsEVMAddress(c.Row.Wallet) {
		hint = lipgloss.NewStyle().Foreground(styles.CMuted).Render(" evm")
	}

	line := fmt.Sprintf("%s%s  %s%s  %s %s",
		marker,
		removeStyle.Render(fmt.Sprintf("[x] #%d", idx+1)),
		wallet,
		hint,
		amount,
		styles.CurrencyStyle.Render(string(c.Row.Currency)),
	)

	if c.Row.Error != "" {
		line += "\n      " + styles.ErrorStyle.Render(c.Row.Error)
	}
	return line
}

func placeholder(v, ph string) string {
	if v == "" {
		return lipgloss.NewStyle().Foreground(styles.CMuted).Faint(true).Render(ph)
	}
	return lipgloss.NewStyle().Foreground(styles.CText).Render(v)
}
