package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// shuffleCmd represents the shuffle command
var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle the active category's pool",
	Long:  "Shuffle the active category's pool. Membership, history and exclusions are untouched.",
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
		if err := sess.ShuffleCategory(category); err != nil {
			return err
		}
		c, _ := sess.Category(category)
		fmt.Println(strings.Join(c.Pool, "\n"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shuffleCmd)
	shuffleCmd.Flags().StringP("category", "c", "", "Category to shuffle (defaults to the active one)")
}
