package main

import (
	"fmt"
	"time"

	"charm-walletlist-tui/config"
	"charm-walletlist-tui/helpers"
	"charm-walletlist-tui/walletform"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// statusTTL is how long a status line stays visible
const statusTTL = 3 * time.Second

// readFile reads and decodes a dropped file off the update loop
func readFile(t walletform.Ticket) tea.Cmd {
	return func() tea.Msg {
		text, err := walletform.ReadFile(t.Path)
		return fileReadMsg{ticket: t, text: text, err: err}
	}
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// copyRowsToClipboard copies the rows as a tab-separated file
func copyRowsToClipboard(rows []walletform.Row) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(walletform.FormatFile(rows))
		return clipboardCopiedMsg{rows: len(rows), err: err}
	}
}

// pasteFromClipboard reads the clipboard so its contents can be handled as a drop
func pasteFromClipboard() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		return clipboardPastedMsg{text: text, err: err}
	}
}

// clearStatusAfter clears the status line with the given id after d
func clearStatusAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// -------------------- MODEL HELPER METHODS --------------------
// These methods help with state management and command generation

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}
	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

// setStatus shows a message under the form and schedules its removal
func (m *model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusID++
	m.status = msg
	m.statusErr = isErr
	return clearStatusAfter(m.statusID, statusTTL)
}

// saveConfig persists settings, logging rather than failing on error
func (m *model) saveConfig() {
	m.cfg.Logger = m.logEnabled
	if err := config.Save(m.configPath, m.cfg); err != nil {
		m.addLog("error", fmt.Sprintf("Saving config `%s` failed: %s", m.configPath, err))
	}
}

// textInputActive returns true if any text input is currently active
func (m model) textInputActive() bool {
	return m.editing || m.importForm != nil
}

// handleDrop treats text delivered by the terminal as dropped files; only the first one is imported
func (m *model) handleDrop(text string) tea.Cmd {
	path, n := helpers.FirstDroppedPath(text)
	if path == "" {
		m.addLog("debug", "Drop contained no file path")
		return nil
	}
	if n > 1 {
		m.addLog("warning", fmt.Sprintf("Dropped %d files, importing only `%s`", n, path))
	}
	return m.startImport(path)
}

// startImport begins reading path in the background
func (m *model) startImport(path string) tea.Cmd {
	if m.importer.State() == walletform.ImportReading {
		m.addLog("warning", fmt.Sprintf("Still reading `%s`, newer drop `%s` wins", m.importer.Path(), path))
	}
	ticket := m.importer.Begin(path)
	m.addLog("info", fmt.Sprintf("Reading `%s`", path))
	return tea.Batch(readFile(ticket), m.spin.Tick)
}

// applyFileRead replaces the rows with a finished read, unless a newer read superseded it
func (m *model) applyFileRead(msg fileReadMsg) tea.Cmd {
	if !m.importer.Complete(msg.ticket) {
		m.addLog("debug", fmt.Sprintf("Discarding stale read of `%s`", msg.ticket.Path))
		return nil
	}
	if msg.err != nil {
		m.addLog("error", fmt.Sprintf("Import failed: %s", msg.err))
		return m.setStatus("Could not read "+msg.ticket.Path, true)
	}

	m.stopEditing()
	n := m.form.Import(msg.text)
	m.selected = 0
	m.showQR = false

	total, _ := m.form.Total()
	m.addLog("success", fmt.Sprintf("Imported %d rows from `%s`, total %s USDT", n, msg.ticket.Path, helpers.FormatTotal(total)))

	if dir := dirOf(msg.ticket.Path); dir != "" && dir != m.cfg.ImportDir {
		m.cfg.ImportDir = dir
		m.saveConfig()
	}
	return m.setStatus(fmt.Sprintf("Imported %d rows", n), false)
}
