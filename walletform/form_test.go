package walletform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRow(t *testing.T) {
	f := New()
	f.AddRow()
	f.AddRow()

	require.Equal(t, 2, f.Len())
	row, ok := f.Row(1)
	require.True(t, ok)
	assert.Equal(t, Row{Currency: USDT}, row)

	// adding does not compute a total
	_, computed := f.Total()
	assert.False(t, computed)
	assert.False(t, f.ShowTotal())
}

func TestRemoveRow_KeepsOrder(t *testing.T) {
	f := New()
	for _, w := range []string{"a", "b", "c", "d"} {
		f.AddRow()
		require.NoError(t, f.HandleInputChange(f.Len()-1, FieldWallet, w))
	}

	f.RemoveRow(1)

	rows := f.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[0].Wallet)
	assert.Equal(t, "c", rows[1].Wallet)
	assert.Equal(t, "d", rows[2].Wallet)
}

func TestRemoveRow_OutOfRange(t *testing.T) {
	f := New()
	f.AddRow()

	f.RemoveRow(5)
	f.RemoveRow(-1)

	assert.Equal(t, 1, f.Len())
	total, computed := f.Total()
	assert.True(t, computed)
	assert.Equal(t, 0.0, total)
}

func TestRemoveRow_RecalculatesTotal(t *testing.T) {
	f := New()
	f.Import("h\na\t10\nb\t5")

	f.RemoveRow(0)

	total, _ := f.Total()
	assert.Equal(t, 5.0, total)
}

func TestHandleInputChange_Amount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		stored string
		errMsg string
	}{
		{"digits", "125", "125", ""},
		{"comma and dot", "1,000.50", "1,000.50", ""},
		{"letter stripped", "12a5", "125", InvalidAmountMessage},
		{"currency suffix stripped", "10USD", "10", InvalidAmountMessage},
		{"space stripped", "1 000", "1000", InvalidAmountMessage},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			f.AddRow()
			require.NoError(t, f.HandleInputChange(0, FieldAmount, tt.input))

			row, _ := f.Row(0)
			assert.Equal(t, tt.stored, row.Amount)
			assert.Equal(t, tt.errMsg, row.Error)
			assert.Equal(t, USDT, row.Currency)
		})
	}
}

func TestHandleInputChange_ErrorClearsOnCorrection(t *testing.T) {
	f := New()
	f.AddRow()

	require.NoError(t, f.HandleInputChange(0, FieldAmount, "12a"))
	row, _ := f.Row(0)
	assert.Equal(t, InvalidAmountMessage, row.Error)

	require.NoError(t, f.HandleInputChange(0, FieldAmount, "12"))
	row, _ = f.Row(0)
	assert.Empty(t, row.Error)
}

func TestHandleInputChange_WalletVerbatim(t *testing.T) {
	f := New()
	f.AddRow()

	require.NoError(t, f.HandleInputChange(0, FieldWallet, "  not an address!  "))

	row, _ := f.Row(0)
	assert.Equal(t, "  not an address!  ", row.Wallet)
	assert.Empty(t, row.Error)
}

func TestHandleInputChange_Errors(t *testing.T) {
	f := New()
	f.AddRow()

	err := f.HandleInputChange(3, FieldAmount, "1")
	assert.ErrorIs(t, err, ErrRowOutOfRange)

	err = f.HandleInputChange(0, Field("memo"), "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	err = f.HandleInputChange(0, FieldCurrency, "EUR")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
	row, _ := f.Row(0)
	assert.Equal(t, USDT, row.Currency)

	_, computed := f.Total()
	assert.False(t, computed)
}

func TestHandleInputChange_Currency(t *testing.T) {
	f := New()
	f.AddRow()

	require.NoError(t, f.HandleInputChange(0, FieldCurrency, "USD"))
	row, _ := f.Row(0)
	assert.Equal(t, USD, row.Currency)

	require.NoError(t, f.HandleInputChange(0, FieldCurrency, "USDT"))
	row, _ = f.Row(0)
	assert.Equal(t, USDT, row.Currency)
}

func TestScenario_AddThenTypeAmount(t *testing.T) {
	f := New()
	f.AddRow()
	require.NoError(t, f.HandleInputChange(0, FieldAmount, "12,5"))

	total, computed := f.Total()
	assert.True(t, computed)
	assert.Equal(t, 125.0, total)
}

func TestScenario_AddThenTypeDecimal(t *testing.T) {
	f := New()
	f.AddRow()
	require.NoError(t, f.HandleInputChange(0, FieldAmount, "12.5"))

	total, _ := f.Total()
	assert.Equal(t, 12.5, total)
	assert.True(t, f.ShowTotal())
}

func TestShowTotal_ZeroHidden(t *testing.T) {
	f := New()
	f.AddRow()
	f.AddRow()
	require.NoError(t, f.HandleInputChange(0, FieldAmount, "0"))
	require.NoError(t, f.HandleInputChange(1, FieldAmount, ""))

	total, computed := f.Total()
	assert.True(t, computed)
	assert.Equal(t, 0.0, total)
	assert.False(t, f.ShowTotal())
}

func TestCalculateTotal(t *testing.T) {
	rows := []Row{
		{Amount: "1,000.5"},
		{Amount: "2"},
		{Amount: ""},
		{Amount: "."},
		{Amount: "3.5.7"},
		{Amount: "abc"},
	}
	assert.Equal(t, 1006.0, CalculateTotal(rows))
	assert.Equal(t, 0.0, CalculateTotal(nil))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{"  7", 7},
		{"12.5.3", 12.5},
		{"10USD", 10},
		{"-4", -4},
		{"+4", 4},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1e", 1},
		{"Infinity", math.Inf(1)},
		{"0x10", 0},
		{"\u00a0\u20289", 9},
		{"\uFEFF3", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.in), tt.in)
	}

	for _, in := range []string{"", ".", ",", "abc", "e5", "-", "\u008512"} {
		assert.True(t, math.IsNaN(ParseAmount(in)), in)
	}
}

func TestSanitizeAmount(t *testing.T) {
	assert.Equal(t, "1,2.3", SanitizeAmount("1,2.3"))
	assert.Equal(t, "12", SanitizeAmount("$1 2€"))
	assert.Equal(t, "", SanitizeAmount("USD"))
}

func TestRowsReturnsCopy(t *testing.T) {
	f := New()
	f.AddRow()

	rows := f.Rows()
	rows[0].Wallet = "changed"

	row, _ := f.Row(0)
	assert.Empty(t, row.Wallet)
}
