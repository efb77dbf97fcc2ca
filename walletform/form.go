package walletform

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Currency is the denomination shown next to a row amount
type Currency string

const (
	USD  Currency = "USD"
	USDT Currency = "USDT"
)

// InvalidAmountMessage is shown inline when an amount edit contained a disallowed character
const InvalidAmountMessage = "Only numbers, commas, and dots are allowed."

// Field names an editable field of a Row
type Field string

const (
	FieldWallet   Field = "wallet"
	FieldAmount   Field = "amount"
	FieldCurrency Field = "currency"
	FieldError    Field = "error"
)

var (
	ErrRowOutOfRange   = errors.New("row index out of range")
	ErrUnknownField    = errors.New("unknown row field")
	ErrInvalidCurrency = errors.New("currency must be USD or USDT")
)

// Row is one wallet entry in the list
type Row struct {
	Wallet   string
	Amount   string // kept as typed so partial input like "12," survives
	Currency Currency
	Error    string
}

// Form holds the ordered rows and the total derived from them.
// Rows have no identity beyond their position.
type Form struct {
	rows     []Row
	total    float64
	computed bool
}

// New returns an empty form with no total computed yet
func New() *Form {
	return &Form{}
}

// Len returns the number of rows
func (f *Form) Len() int {
	return len(f.rows)
}

// Rows returns a copy of the current rows
func (f *Form) Rows() []Row {
	out := make([]Row, len(f.rows))
	copy(out, f.rows)
	return out
}

// Row returns the row at index
func (f *Form) Row(index int) (Row, bool) {
	if index < 0 || index >= len(f.rows) {
		return Row{}, false
	}
	return f.rows[index], true
}

// AddRow appends an empty USDT row. The total is left as it was.
func (f *Form) AddRow() {
	f.rows = append(f.rows, Row{Currency: USDT})
}

// RemoveRow drops the row at index and recalculates the total.
// An index outside the list removes nothing.
func (f *Form) RemoveRow(index int) {
	kept := make([]Row, 0, len(f.rows))
	for i, r := range f.rows {
		if i != index {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	f.recalculate()
}

// HandleInputChange applies an inline edit to one field of a row.
// Amount edits are sanitized to [0-9.,] and flag the row when anything was stripped.
func (f *Form) HandleInputChange(index int, field Field, value string) error {
	if index < 0 || index >= len(f.rows) {
		return fmt.Errorf("edit %s at %d: %w", field, index, ErrRowOutOfRange)
	}

	row := &f.rows[index]
	switch field {
	case FieldWallet:
		row.Wallet = value
	case FieldAmount:
		sanitized := SanitizeAmount(value)
		row.Amount = sanitized
		// sanitized text can never contain letters, so this always picks USDT
		if strings.Contains(sanitized, "USD") {
			row.Currency = USD
		} else {
			row.Currency = USDT
		}
		if value != sanitized {
			row.Error = InvalidAmountMessage
		} else {
			row.Error = ""
		}
	case FieldCurrency:
		c := Currency(value)
		if c != USD && c != USDT {
			return fmt.Errorf("edit %s at %d: %q: %w", field, index, value, ErrInvalidCurrency)
		}
		row.Currency = c
	case FieldError:
		row.Error = value
	default:
		return fmt.Errorf("edit %q at %d: %w", field, index, ErrUnknownField)
	}

	f.recalculate()
	return nil
}

// Import replaces every row with the rows parsed from a tab-separated file
func (f *Form) Import(text string) int {
	f.rows = ParseFile(text)
	f.recalculate()
	return len(f.rows)
}

// Total returns the last computed total and whether one was computed at all
func (f *Form) Total() (float64, bool) {
	return f.total, f.computed
}

// ShowTotal reports whether the total line is rendered.
// A total of exactly zero is hidden, same as one never computed.
func (f *Form) ShowTotal() bool {
	return f.computed && f.total != 0 && !math.IsNaN(f.total)
}

func (f *Form) recalculate() {
	f.total = CalculateTotal(f.rows)
	f.computed = true
}

// CalculateTotal sums the rows' amounts with commas removed; unparsable amounts count as zero
func CalculateTotal(rows []Row) float64 {
	var sum float64
	for _, r := range rows {
		v := ParseAmount(strings.ReplaceAll(r.Amount, ",", ""))
		if math.IsNaN(v) {
			v = 0
		}
		sum += v
	}
	return sum
}

// SanitizeAmount keeps only digits, commas and dots
func SanitizeAmount(value string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			return r
		}
		return -1
	}, value)
}
