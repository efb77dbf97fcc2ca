package main

import (
	"charm-walletlist-tui/walletform"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// fileReadMsg carries the decoded contents of a dropped file
type fileReadMsg struct {
	ticket walletform.Ticket
	text   string
	err    error
}

// clipboardCopiedMsg indicates the rows were copied to the clipboard
type clipboardCopiedMsg struct {
	rows int
	err  error
}

// clipboardPastedMsg carries clipboard text that should be treated as a file drop
type clipboardPastedMsg struct {
	text string
	err  error
}

// clearStatusMsg clears the status line once its time is up
type clearStatusMsg struct {
	id int
}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}
