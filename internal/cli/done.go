package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doneCmd)
}

var doneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Toggle a task's completed state",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	// Populate the local list so the toggle knows the current state.
	if err := sess.Refresh(cmd.Context()); err != nil {
		return err
	}

	task, err := sess.Toggle(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", checkbox(task.Completed), task.Text)
	return nil
}
