package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <label>...",
	Short: "Add items to the active category",
	Long: `Add items to the active category. Added items persist across runs,
independently of the configured base list, and survive a reset.`,
	Args: cobra.MinimumNArgs(1),
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

		added := 0
		for _, label := range args {
			ok, err := sess.AddItem(category, label)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("Skipping blank label %q.\n", label)
				continue
			}
			added++
		}
		if added > 0 {
			c, _ := sess.Category(category)
			fmt.Printf("Added %d item(s) to %q (pool is now %s).\n", added, category, pluralItems(len(c.Pool)))
		}
		return nil
	},
}

func pluralItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("category", "c", "", "Category to add to (defaults to the active one)")
}
