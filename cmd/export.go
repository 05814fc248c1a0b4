package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the sharable categories configuration as JSON",
	Long: `Print the sharable categories configuration as JSON: every category's
configured items plus any added ones, in configuration order. Exclusions and
history are session state and are not reflected. The output is a valid input
for --categories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, cfg, cleanup, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		// Hand-built so category order survives; a Go map would sort keys.
		var buf bytes.Buffer
		buf.WriteString("{\n  \"categories\": {\n")
		snapshot := sess.ExportSnapshot()
		for i, c := range snapshot {
			name, _ := json.Marshal(c.Name)
			items, _ := json.Marshal(c.Items)
			buf.WriteString("    ")
			buf.Write(name)
			buf.WriteString(": ")
			buf.Write(items)
			if i < len(snapshot)-1 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
		}
		buf.WriteString("  }")
		if len(cfg.Challenges) > 0 {
			challenges, _ := json.Marshal(cfg.Challenges)
			buf.WriteString(",\n  \"challenges\": ")
			buf.Write(challenges)
		}
		buf.WriteString("\n}")

		fmt.Println(buf.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
