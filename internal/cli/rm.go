package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	if err := sess.Refresh(cmd.Context()); err != nil {
		return err
	}

	if err := sess.Remove(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Removed %s\n", args[0])
	return nil
}
