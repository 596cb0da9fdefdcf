package cmd

import (
	"fmt"

	"github.com/msto63/strlist/internal/tui"
	"github.com/msto63/strlist/pkg/strlist"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Shuffle and sort the digits 0-9",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	digits := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	list := strlist.FromSlice(len(digits), digits, s.options()...)
	defer list.Free()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.RenderTitle("created"))
	fmt.Fprintln(out, list)

	list.Shuffle()
	fmt.Fprintln(out, tui.RenderTitle("shuffled"))
	fmt.Fprintln(out, list)

	list.Sort()
	fmt.Fprintln(out, tui.RenderTitle("sorted"))
	fmt.Fprintln(out, tui.RenderItems(list.Values(), list.Cap()))
	return nil
}
