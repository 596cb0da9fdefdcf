package cmd

import (
	"fmt"

	"github.com/msto63/strlist/internal/harness"
	sllog "github.com/msto63/strlist/pkg/core/log"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the self-check scenarios",
	Long: `Runs every list scenario and reports each one as a test-success or
test-failure event through the logger, plus a summary on stdout.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	results := harness.Run(s.observer, harness.Scenarios(), s.options()...)

	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.Passed() {
			fmt.Fprintf(out, "PASS  %s\n", r.Name)
		} else {
			fmt.Fprintf(out, "FAIL  %s: %v\n", r.Name, r.Err)
		}
	}

	failed := harness.Failed(results)
	fmt.Fprintf(out, "%d passed, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		s.logger.Error("self-check failed", sllog.Fields{"failed": failed, "scenarios": len(results)})
		return fmt.Errorf("%d scenarios failed", failed)
	}
	s.logger.Info("self-check passed", sllog.Fields{"scenarios": len(results)})
	return nil
}
