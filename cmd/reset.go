package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the active category's pool, exclusions and history",
	Long: `Reset the active category: discard its persisted exclusions and history and
rebuild the pool from the configured items plus any added ones. Added items
are kept. Other categories are not touched.`,
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
		if err := sess.ResetCategory(category); err != nil {
			return err
		}
		c, _ := sess.Category(category)
		fmt.Printf("Reset %q: %d item(s) back in the pool.\n", category, len(c.Pool))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().StringP("category", "c", "", "Category to reset (defaults to the active one)")
}
