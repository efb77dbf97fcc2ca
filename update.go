package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm-walletlist-tui/helpers"
	"charm-walletlist-tui/walletform"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- TEMP FORM STORAGE --------------------
// Temporary form field storage (package-level to avoid pointer-to-copy issues)
var tempImportPath string

func (m *model) createImportForm() {
	tempImportPath = ""
	if m.cfg.ImportDir != "" {
		tempImportPath = m.cfg.ImportDir + string(filepath.Separator)
	}

	m.importForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Import wallets").
				Description("Tab-separated file: wallet, amount, currency. The first line is skipped.").
				Value(&tempImportPath).
				Placeholder("/path/to/wallets.tsv").
				Validate(validateImportPath),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.importForm.Init()
}

func validateImportPath(s string) error {
	info, err := os.Stat(strings.TrimSpace(s))
	if err != nil {
		return errors.New("file not found")
	}
	if info.IsDir() {
		return errors.New("that is a directory")
	}
	return nil
}

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle the import prompt first
	if m.importForm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.importForm = nil
			return m, nil
		}

		form, cmd := m.importForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.importForm = f

			if m.importForm.State == huh.StateCompleted {
				m.importForm = nil
				return m, m.startImport(strings.TrimSpace(tempImportPath))
			}
			if m.importForm.State == huh.StateAborted {
				m.importForm = nil
				return m, nil
			}
		}
		// file reads and ticks still need to land while the prompt is open
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, cmd
		}
		var more tea.Cmd
		_, more = m.handleMsg(msg)
		return m, tea.Batch(cmd, more)
	}

	return m.handleMsg(msg)
}

func (m *model) handleMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		m.logger = log.NewWithOptions(m.logBuffer, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		})
		m.logger.SetLevel(log.DebugLevel)
		m.logger.SetStyles(&log.Styles{
			Timestamp: lipgloss.NewStyle().Foreground(cMuted),
			Caller:    lipgloss.NewStyle().Faint(true),
			Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
			Message:   lipgloss.NewStyle().Foreground(cText),
			Key:       lipgloss.NewStyle().Foreground(cAccent),
			Value:     lipgloss.NewStyle().Foreground(cText),
			Separator: lipgloss.NewStyle().Faint(true),
			Levels: map[log.Level]lipgloss.Style{
				log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
				log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
				log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
				log.ErrorLevel: lipgloss.NewStyle().Foreground(cError).SetString("ERROR"),
			},
		})
		m.logReady = true
		m.addLog("info", "Logger enabled")
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		m.walletInput.Width = helpers.Max(20, helpers.Min(44, msg.Width-40))
		if m.logEnabled {
			m.logViewport.Width = helpers.Max(0, msg.Width-6)
			if m.logReady {
				m.updateLogViewport()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		// the import spinner stops ticking once no read is in flight
		if m.importer.State() == walletform.ImportReading {
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		if len(cmds) == 0 {
			return m, nil
		}
		return m, tea.Batch(cmds...)

	case fileReadMsg:
		return m, m.applyFileRead(msg)

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.addLog("error", "Clipboard copy failed: "+msg.err.Error())
			return m, m.setStatus("Clipboard unavailable", true)
		}
		m.addLog("success", fmt.Sprintf("Copied %d rows to clipboard", msg.rows))
		return m, m.setStatus(fmt.Sprintf("Copied %d rows", msg.rows), false)

	case clipboardPastedMsg:
		if msg.err != nil {
			m.addLog("error", "Clipboard read failed: "+msg.err.Error())
			return m, m.setStatus("Clipboard unavailable", true)
		}
		return m, m.handleDrop(msg.text)

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.editing {
		return m, m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showQR {
		switch msg.String() {
		case "ctrl+c":
			return tea.Quit
		case "esc", "enter", "r", "q":
			m.showQR = false
		}
		return nil
	}

	if m.editing {
		return m.handleEditKey(msg)
	}

	// terminals deliver drag-and-drop as a bracketed paste of the file path
	if msg.Paste {
		return m.handleDrop(string(msg.Runes))
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit

	case "l", "L":
		m.logEnabled = !m.logEnabled
		if m.logEnabled {
			if m.w > 0 {
				m.logViewport.Width = m.w - 6
			}
			m.logReady = false
			m.saveConfig()
			return tea.Batch(initLogViewport(), m.logSpinner.Tick)
		}
		if m.logBuffer != nil {
			m.logBuffer.Reset()
		}
		m.logger = nil
		m.logReady = false
		m.saveConfig()
		return nil

	case "pageup", "pagedown":
		if m.logEnabled && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return cmd
		}
		return nil

	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)

	case "enter", "tab":
		if m.selected == m.form.Len() {
			m.addRow()
			return nil
		}
		return m.beginEditing()

	case "a", "+":
		m.addRow()

	case "d", "delete":
		m.removeSelected()

	case "i":
		m.createImportForm()

	case "p", "ctrl+v":
		return pasteFromClipboard()

	case "y":
		return copyRowsToClipboard(m.form.Rows())

	case "r":
		if m.selected < m.form.Len() {
			m.showQR = true
		}
	}
	return nil
}

func (m *model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "enter":
		m.stopEditing()
		return nil
	case "tab", "shift+tab":
		return m.toggleField()
	case "ctrl+v":
		text, err := clipboard.ReadAll()
		if err != nil {
			m.addLog("error", "Clipboard read failed: "+err.Error())
			return nil
		}
		m.insertText(text)
		return nil
	}
	return m.updateFocusedInput(msg)
}
