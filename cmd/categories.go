package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the configured categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, cleanup, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		verbose, _ := cmd.Flags().GetBool("items")
		for _, c := range sess.Categories() {
			marker := " "
			if c.Name == sess.ActiveName() {
				marker = "*"
			}
			fmt.Printf("%s %s (%d in pool, %d configured, %d added)\n",
				marker, c.Name, len(c.Pool), len(c.Base), len(sess.Additions(c.Name)))
			if verbose {
				for _, label := range c.Pool {
					fmt.Printf("    %s\n", label)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.Flags().BoolP("items", "i", false, "Also print each category's current pool")
}
