package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// useCmd represents the use command
var useCmd = &cobra.Command{
	Use:   "use <category>",
	Short: "Select the active category",
	Long:  "Select the active category. The selection persists across runs; pools are not touched.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, cleanup, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := sess.SelectCategory(args[0]); err != nil {
			return err
		}
		fmt.Printf("Active category is now %q.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
