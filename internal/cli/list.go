package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all tasks",
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	if err := sess.Refresh(cmd.Context()); err != nil {
		return err
	}

	tasks := sess.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks. Run 'taskdeck add <text>' to create one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tTEXT\tCREATED")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			checkbox(t.Completed),
			t.ID,
			t.Text,
			t.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
