package main

import (
	"fmt"
	"path/filepath"

	"charm-walletlist-tui/helpers"
	"charm-walletlist-tui/walletform"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- ROW EDITING --------------------

// beginEditing loads the selected row into the inline inputs and focuses the wallet cell
func (m *model) beginEditing() tea.Cmd {
	row, ok := m.form.Row(m.selected)
	if !ok {
		return nil
	}
	m.editing = true
	m.walletInput.SetValue(row.Wallet)
	m.amountInput.SetValue(row.Amount)
	m.walletInput.CursorEnd()
	m.amountInput.CursorEnd()
	return m.focusField(walletform.FieldWallet)
}

// stopEditing leaves edit mode, firing the blur of the focused cell first
func (m *model) stopEditing() {
	if !m.editing {
		return
	}
	m.blur()
	m.walletInput.Blur()
	m.amountInput.Blur()
	m.editing = false
	m.focusedField = walletform.FieldWallet
}

// focusField moves focus between the wallet and amount cells
func (m *model) focusField(field walletform.Field) tea.Cmd {
	m.focusedField = field
	if field == walletform.FieldAmount {
		m.walletInput.Blur()
		return m.amountInput.Focus()
	}
	m.amountInput.Blur()
	return m.walletInput.Focus()
}

// toggleField fires blur on the focused cell and focuses the other one
func (m *model) toggleField() tea.Cmd {
	m.blur()
	if m.focusedField == walletform.FieldWallet {
		return m.focusField(walletform.FieldAmount)
	}
	return m.focusField(walletform.FieldWallet)
}

// blur re-applies the amount cell when it loses focus, which recalculates the total a second time
func (m *model) blur() {
	if m.focusedField == walletform.FieldAmount {
		m.applyEdit(walletform.FieldAmount, m.amountInput.Value())
	}
}

// focusedInput returns the text input behind the focused cell
func (m *model) focusedInput() *textinput.Model {
	if m.focusedField == walletform.FieldAmount {
		return &m.amountInput
	}
	return &m.walletInput
}

// updateFocusedInput forwards a message to the focused cell and applies the edit when the text changed
func (m *model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	in := m.focusedInput()
	before := in.Value()

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)

	if in.Value() != before {
		m.applyEdit(m.focusedField, in.Value())
	}
	return cmd
}

// applyEdit stores value into the selected row and mirrors the stored value back into the input
func (m *model) applyEdit(field walletform.Field, value string) {
	if err := m.form.HandleInputChange(m.selected, field, value); err != nil {
		m.addLog("error", err.Error())
		return
	}

	row, _ := m.form.Row(m.selected)
	if field == walletform.FieldAmount && row.Amount != value {
		m.amountInput.SetValue(row.Amount)
		m.amountInput.CursorEnd()
		m.addLog("warning", fmt.Sprintf("Row %d: %s", m.selected+1, row.Error))
	}
}

// insertText appends text to the focused cell as one change
func (m *model) insertText(text string) {
	in := m.focusedInput()
	in.SetValue(in.Value() + text)
	in.CursorEnd()
	m.applyEdit(m.focusedField, in.Value())
}

// moveSelection moves the cursor over the rows and the add-row button
func (m *model) moveSelection(delta int) {
	m.selected = helpers.Max(0, helpers.Min(m.form.Len(), m.selected+delta))
}

// addRow appends an empty row and selects it
func (m *model) addRow() {
	m.form.AddRow()
	m.selected = m.form.Len() - 1
	m.addLog("info", fmt.Sprintf("Added row %d", m.form.Len()))
}

// removeSelected removes the selected row, keeping the cursor in range
func (m *model) removeSelected() {
	if m.selected >= m.form.Len() {
		return
	}
	row, _ := m.form.Row(m.selected)
	m.form.RemoveRow(m.selected)
	if m.selected > m.form.Len() {
		m.selected = m.form.Len()
	}
	m.addLog("warning", fmt.Sprintf("Removed row with wallet `%s`", helpers.ShortenAddr(row.Wallet)))
}

// dirOf returns the absolute directory of path
func dirOf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	return filepath.Dir(abs)
}
