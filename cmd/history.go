package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the active category's past picks, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, cleanup, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		category, _ := cmd.Flags().GetString("category")
		if category == "" {
			category = sess.ActiveName()
		}
		history := sess.History(category)
		if len(history) == 0 {
			fmt.Printf("No picks recorded for %q yet.\n", category)
			return nil
		}
		// The ledger is oldest-first; display is most-recent-first.
		for i := len(history) - 1; i >= 0; i-- {
			fmt.Println(history[i])
		}
		return nil
	},
}

// historyClearCmd represents the history clear command
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the active category's pick history",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, cleanup, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		category, _ := cmd.Flags().GetString("category")
		if category == "" {
			category = sess.ActiveName()
		}
		if err := sess.ClearHistory(category); err != nil {
			return err
		}
		fmt.Printf("Cleared history for %q.\n", category)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.PersistentFlags().StringP("category", "c", "", "Category (defaults to the active one)")
}
