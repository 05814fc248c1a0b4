package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// spinCmd represents the spin command
var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Spin the active category and announce the pick",
	Long: `Spin the active category and announce the pick.

With exclude-picked enabled (see 'classpick settings'), each pick is removed
from the pool and stays excluded across runs until the category is reset.`,
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
		picks, _ := cmd.Flags().GetInt("picks")

		for n := 0; n < picks; n++ {
			label, ok, err := sess.SpinCategory(category)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("Nothing to pick: the %q pool is empty. Try 'classpick reset'.\n", category)
				return nil
			}
			fmt.Println(label)
		}

		if sess.Settings().ShowHistory {
			printRecentHistory(sess.History(category))
		}
		return nil
	},
}

// printRecentHistory shows the last few picks, most recent first.
func printRecentHistory(history []string) {
	const show = 5
	if len(history) < 2 {
		return
	}
	fmt.Println("\nRecent picks:")
	shown := 0
	for i := len(history) - 1; i >= 0 && shown < show; i-- {
		fmt.Printf("  %s\n", history[i])
		shown++
	}
}

func init() {
	rootCmd.AddCommand(spinCmd)
	spinCmd.Flags().StringP("category", "c", "", "Category to spin (defaults to the active one)")
	spinCmd.Flags().IntP("picks", "n", 1, "Number of picks to make in a row")
}
