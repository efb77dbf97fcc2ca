package main

import (
	"strings"

	"charm-walletlist-tui/config"
	"charm-walletlist-tui/styles"
	"charm-walletlist-tui/walletform"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	// rows and derived total
	form     *walletform.Form
	importer walletform.Importer

	// cursor over the rows; len(rows) selects the add-row button
	selected int

	// inline editing of the selected row
	editing      bool
	focusedField walletform.Field
	walletInput  textinput.Model
	amountInput  textinput.Model

	// import prompt
	importForm *huh.Form

	// QR panel for the selected row
	showQR bool

	spin spinner.Model

	// transient feedback under the form
	status    string
	statusErr bool
	statusID  int

	cfg        config.Config
	configPath string

	// file given on the command line, imported on start
	startupFile string

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// options are the command line settings passed to newModel
type options struct {
	configPath string
	file       string
	logger     bool
}

// -------------------- INIT --------------------

// newModel creates and initializes a new model with configuration from disk
func newModel(opts options) model {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg := config.Load(configPath)
	if opts.logger {
		cfg.Logger = true
	}

	wallet := textinput.New()
	wallet.Placeholder = "wallet address"
	wallet.Prompt = ""
	wallet.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	wallet.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	wallet.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	wallet.Width = 44

	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.Prompt = ""
	amount.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	amount.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	amount.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	amount.Width = 16

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	vp := viewport.New(0, 20) // resized on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	return model{
		form:         walletform.New(),
		focusedField: walletform.FieldWallet,
		walletInput:  wallet,
		amountInput:  amount,
		spin:         sp,
		cfg:          cfg,
		configPath:   configPath,
		startupFile:  opts.file,
		logEnabled:   cfg.Logger,
		logBuffer:    &strings.Builder{},
		logViewport:  vp,
		logSpinner:   logSpin,
	}
}

// Init implements tea.Model interface and returns initial commands
func (m *model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	if m.startupFile != "" {
		cmds = append(cmds, m.startImport(m.startupFile))
	}
	return tea.Batch(cmds...)
}
