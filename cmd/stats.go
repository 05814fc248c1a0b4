package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints statistics about the categories and their picks.",
	Long:  "Prints statistics about the categories and their picks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, cleanup, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		cats := sess.Categories()
		if len(cats) == 0 {
			fmt.Println("No categories configured.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "CATEGORY\tPOOL\tBASE\tADDED\tPICKS\t")

		var totalPool, totalBase, totalAdded, totalPicks int
		for _, c := range cats {
			added := len(sess.Additions(c.Name))
			picks := len(sess.History(c.Name))
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t\n", c.Name, len(c.Pool), len(c.Base), added, picks)
			totalPool += len(c.Pool)
			totalBase += len(c.Base)
			totalAdded += added
			totalPicks += picks
		}

		fmt.Fprintln(w, " \t \t \t \t \t")
		fmt.Fprintf(w, "TOTAL\t%d\t%d\t%d\t%d\t\n", totalPool, totalBase, totalAdded, totalPicks)

		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
