package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/strlist/internal/tui"
	"github.com/msto63/strlist/pkg/strlist"
	"github.com/spf13/cobra"
)

var tuiLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive list editor",
	Long: `Starts the terminal list editor.

Commands are typed at the prompt using the run syntax; "help" lists them.

Keys:
  Enter     - Apply command
  Ctrl+L    - Clear history
  Ctrl+C    - Quit

The screen is owned by the editor, so diagnostics only go to --log-file.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write list diagnostics to this file")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	var logOut io.Writer = io.Discard
	if tuiLogFile != "" {
		f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}

	s, err := newSession(cmd, logOut)
	if err != nil {
		return err
	}

	list, err := strlist.New(s.settings.List.InitialCapacity, s.options()...)
	if err != nil {
		return err
	}
	defer list.Free()

	p := tea.NewProgram(
		tui.NewModel(list),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}
