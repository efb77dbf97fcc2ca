package qr

import (
	"testing"

	"charm-walletlist-tui/walletform"

	"github.com/stretchr/testify/assert"
)

func TestPayload(t *testing.T) {
	evm := walletform.Row{Wallet: " 0xd8da6bf26964af9d7eed9e03e53415d37aa96045 "}
	assert.Equal(t, "ethereum:0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", Payload(evm))

	// the amount is shown beside the code, never encoded in it
	withAmount := walletform.Row{Wallet: "0xd8da6bf26964af9d7eed9e03e53415d37aa96045", Amount: "10"}
	assert.Equal(t, "ethereum:0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", Payload(withAmount))

	tron := walletform.Row{Wallet: "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"}
	assert.Equal(t, "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE", Payload(tron))
}

func TestRender(t *testing.T) {
	out := Render(walletform.Row{Wallet: "addr1", Amount: "", Currency: walletform.USDT})
	assert.Contains(t, out, "addr1")
	assert.Contains(t, out, "0 USDT")
	assert.NotEmpty(t, GenerateQRCode("addr1"))

	out = Render(walletform.Row{Currency: walletform.USDT})
	assert.Contains(t, out, "no wallet address")
}
