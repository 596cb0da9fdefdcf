package cmd

import (
	"fmt"

	"github.com/msto63/strlist/internal/script"
	sllog "github.com/msto63/strlist/pkg/core/log"
	"github.com/msto63/strlist/pkg/strlist"
	"github.com/spf13/cobra"
)

var (
	runCapacity int
	runSeed     int64
)

var runCmd = &cobra.Command{
	Use:   "run [op...]",
	Short: "Apply a script of list operations",
	Long: `Applies each operation to a new list in order and prints the result.

` + script.Usage + `

A failing operation is reported and the script continues; the command
exits non-zero if any operation failed.

Example:
  strlist run --capacity 2 add:b add:a insert:c@0 sort print`,
	RunE: runScript,
}

func init() {
	runCmd.Flags().IntVar(&runCapacity, "capacity", 0, "initial capacity (default: list.initial_capacity)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "shuffle seed (default: list.seed or random)")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ops, err := script.ParseAll(args)
	if err != nil {
		return err
	}

	capacity := s.settings.List.InitialCapacity
	if cmd.Flags().Changed("capacity") {
		capacity = runCapacity
	}
	if cmd.Flags().Changed("seed") {
		s.settings.List.Seed = runSeed
		s.settings.List.Seeded = true
	}

	list, err := strlist.New(capacity, s.options()...)
	if err != nil {
		return err
	}
	defer list.Free()

	out := cmd.OutOrStdout()
	failed := script.Run(list, ops, out)
	if err := list.Print(out); err != nil {
		return err
	}
	fmt.Fprintf(out, "len %d, cap %d\n", list.Len(), list.Cap())

	if failed > 0 {
		s.logger.Warn("script finished with failures", sllog.Fields{"failed": failed, "ops": len(ops)})
		return fmt.Errorf("%d of %d operations failed", failed, len(ops))
	}
	s.logger.Info("script finished", sllog.Fields{"ops": len(ops)})
	return nil
}
