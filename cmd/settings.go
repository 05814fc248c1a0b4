package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings [exclude-picked|show-history] [on|off]",
	Short: "Show or change the persisted spinner settings",
	Long: `Show or change the persisted spinner settings.

  exclude-picked   remove picked items from the pool until a reset
  show-history     print recent picks after each spin`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, cleanup, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if len(args) == 0 {
			s := sess.Settings()
			fmt.Printf("exclude-picked: %s\n", onOff(s.ExcludePicked))
			fmt.Printf("show-history:   %s\n", onOff(s.ShowHistory))
			return nil
		}
		if len(args) != 2 {
			return fmt.Errorf("usage: classpick settings <name> <on|off>")
		}

		var value bool
		switch args[1] {
		case "on":
			value = true
		case "off":
			value = false
		default:
			return fmt.Errorf("invalid value %q, expected on or off", args[1])
		}

		switch args[0] {
		case "exclude-picked":
			sess.SetExcludePicked(value)
		case "show-history":
			sess.SetShowHistory(value)
		default:
			return fmt.Errorf("unknown setting %q", args[0])
		}
		fmt.Printf("%s is now %s.\n", args[0], onOff(value))
		return nil
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
