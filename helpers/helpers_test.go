package helpers

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortenAddr(t *testing.T) {
	assert.Equal(t, "short", ShortenAddr("short"))
	assert.Equal(t, "0xd8dA…6045", ShortenAddr("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
}

func TestIsEVMAddress(t *testing.T) {
	assert.True(t, IsEVMAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"))
	assert.False(t, IsEVMAddress("d8da6bf26964af9d7eed9e03e53415d37aa96045"))
	assert.False(t, IsEVMAddress("TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"))
	assert.False(t, IsEVMAddress(""))
}

func TestChecksumAddr(t *testing.T) {
	assert.Equal(t,
		"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		ChecksumAddr("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"))
	assert.Equal(t, "not-an-address", ChecksumAddr("not-an-address"))
}

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{30.5, "30.5"},
		{125, "125"},
		{-4, "-4"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-8, "-2.5e-8"},
		{0, "0"},
		{math.Inf(1), "Infinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTotal(tt.in))
	}

	a, b := 0.1, 0.2
	assert.Equal(t, "0.30000000000000004", FormatTotal(a+b))
}

func TestSplitDroppedPaths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "/tmp/a.tsv", []string{"/tmp/a.tsv"}},
		{"escaped space", `/tmp/my\ wallets.tsv /tmp/b.tsv`, []string{"/tmp/my wallets.tsv", "/tmp/b.tsv"}},
		{"single quoted", `'/tmp/my wallets.tsv' '/tmp/b.tsv'`, []string{"/tmp/my wallets.tsv", "/tmp/b.tsv"}},
		{"double quoted", `"/tmp/x y.tsv"`, []string{"/tmp/x y.tsv"}},
		{"file uri", "file:///tmp/my%20wallets.tsv\r\nfile:///tmp/b.tsv", []string{"/tmp/my wallets.tsv", "/tmp/b.tsv"}},
		{"trailing space", "/tmp/a.tsv ", []string{"/tmp/a.tsv"}},
		{"empty", "   ", nil},
		{"unterminated quote", `'/tmp/a.tsv`, []string{`'/tmp/a.tsv`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitDroppedPaths(tt.in))
		})
	}
}

func TestFirstDroppedPath(t *testing.T) {
	p, n := FirstDroppedPath("'/a b.tsv' /c.tsv /d.tsv")
	assert.Equal(t, "/a b.tsv", p)
	assert.Equal(t, 3, n)

	p, n = FirstDroppedPath("")
	assert.Empty(t, p)
	assert.Zero(t, n)
}

func TestFirstDroppedPath_ExistingFileKeepsBackslashes(t *testing.T) {
	path := filepath.Join(t.TempDir(), `Users\me\wallets.tsv`)
	require.NoError(t, os.WriteFile(path, []byte("h\n"), 0o644))

	p, n := FirstDroppedPath(path + "\r\n")
	assert.Equal(t, path, p)
	assert.Equal(t, 1, n)

	// the same text naming nothing on disk is read as escapes
	p, _ = FirstDroppedPath(`C:\Users\me\wallets.tsv`)
	assert.Equal(t, "C:Usersmewallets.tsv", p)
}
