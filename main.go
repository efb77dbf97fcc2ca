package main

import (
	"fmt"
	"os"

	"charm-walletlist-tui/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// -------------------- MAIN --------------------

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "walletlist",
		Short: "Edit a list of wallet payouts and import them from tab-separated files",
		Args:  cobra.MaximumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && opts.file == "" {
				opts.file = args[0]
			}
			m := newModel(opts)
			p := tea.NewProgram(&m, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "tab-separated file to import on start")
	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultPath(), "settings file")
	cmd.Flags().BoolVar(&opts.logger, "log", false, "show the debug log panel")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
