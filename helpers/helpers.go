package helpers

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ethereum/go-ethereum/common"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// ShortenAddr shortens a wallet address for display
func ShortenAddr(addr string) string {
	r := []rune(addr)
	if len(r) < 10 {
		return addr
	}
	return string(r[:6]) + "…" + string(r[len(r)-4:])
}

// IsEVMAddress reports whether s looks like a 0x-prefixed 20 byte hex address.
// Used only as a display hint; wallets are never rejected.
func IsEVMAddress(s string) bool {
	return common.IsHexAddress(s) && len(s) == 42
}

// ChecksumAddr returns the EIP-55 form of an EVM address, or s unchanged when it is not one
func ChecksumAddr(s string) string {
	if !IsEVMAddress(s) {
		return s
	}
	return common.HexToAddress(s).Hex()
}

// FormatTotal prints a total the way a browser prints a number:
// shortest exact digits, exponent form below 1e-6 and from 1e21 up
func FormatTotal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= 1e21, v != 0 && math.Abs(v) < 1e-6:
		return trimExponent(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent drops the zero padding Go puts in exponents ("1e-07" -> "1e-7")
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	n := len([]rune(s))
	if n == 0 {
		return ""
	}
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), n)
	return rainbow(lipgloss.NewStyle(), s, blends)
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var result string
	i := 0
	for _, c := range str {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		result += baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c))
		i++
	}
	return result
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
