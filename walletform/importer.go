package walletform

import (
	"fmt"
	"io"
	"os"
	"strings"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileHeader is the first line written by FormatFile. ParseFile skips whatever the first line is.
const FileHeader = "wallet\tamount\tcurrency"

// ParseFile turns tab-separated text into rows. The first line is treated as a header.
// Missing columns fall back to an empty wallet, amount "0" and USDT; no validation is applied.
func ParseFile(text string) []Row {
	lines := strings.Split(strings.TrimFunc(text, isSpace), "\n")[1:]

	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		cols := strings.Split(line, "\t")

		var wallet, amount, currency string
		if len(cols) > 0 {
			wallet = cols[0]
		}
		if len(cols) > 1 {
			amount = cols[1]
		}
		if len(cols) > 2 {
			currency = cols[2]
		}

		if amount == "" {
			amount = "0"
		}
		cur := USDT
		if strings.TrimFunc(currency, isSpace) == string(USD) {
			cur = USD
		}

		rows = append(rows, Row{Wallet: wallet, Amount: amount, Currency: cur})
	}
	return rows
}

// FormatFile writes rows in the format ParseFile reads
func FormatFile(rows []Row) string {
	var b strings.Builder
	b.WriteString(FileHeader)
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(r.Wallet)
		b.WriteString("\t")
		b.WriteString(r.Amount)
		b.WriteString("\t")
		b.WriteString(string(r.Currency))
	}
	b.WriteString("\n")
	return b.String()
}

// DecodeText reads r as UTF-8 text, switching to UTF-16 when a byte order mark says so
func DecodeText(r io.Reader) (string, error) {
	dec := xunicode.BOMOverride(xunicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(data), nil
}

// ReadFile loads and decodes the file at path
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	text, err := DecodeText(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return text, nil
}
