package qr

import (
	"bytes"
	"strings"

	"charm-walletlist-tui/helpers"
	"charm-walletlist-tui/styles"
	"charm-walletlist-tui/walletform"

	"github.com/charmbracelet/lipgloss"
	"github.com/mdp/qrterminal/v3"
)

// Payload returns the text encoded for a row: an ethereum: URI for EVM addresses, the raw wallet otherwise.
// Amounts are USD/USDT figures, not wei, so they stay out of the URI.
func Payload(row walletform.Row) string {
	wallet := strings.TrimSpace(row.Wallet)
	if helpers.IsEVMAddress(wallet) {
		return "ethereum:" + helpers.ChecksumAddr(wallet)
	}
	return wallet
}

// GenerateQRCode renders text as a half-block QR code
func GenerateQRCode(text string) string {
	var buf bytes.Buffer
	qrterminal.GenerateHalfBlock(text, qrterminal.L, &buf)
	return buf.String()
}

// Render renders the QR panel for a row
func Render(row walletform.Row) string {
	title := styles.TitleStyle.Render("Wallet QR")

	payload := Payload(row)
	if payload == "" {
		msg := lipgloss.NewStyle().Foreground(styles.CMuted).Render("This row has no wallet address yet.")
		return title + "\n\n" + msg + "\n\n" + hint()
	}

	amount := row.Amount
	if amount == "" {
		amount = "0"
	}

	lines := []string{
		title,
		"",
		GenerateQRCode(payload),
		lipgloss.NewStyle().Foreground(styles.CText).Render(payload),
		styles.CurrencyStyle.Render(amount + " " + string(row.Currency)),
		"",
		hint(),
	}
	return strings.Join(lines, "\n")
}

func hint() string {
	return lipgloss.NewStyle().Foreground(styles.CMuted).Render("Press Esc or Enter to close")
}
