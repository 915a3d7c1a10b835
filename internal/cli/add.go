package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add TEXT...",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	task, err := sess.Add(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Printf("Added %s (%s)\n", task.Text, task.ID)
	return nil
}
