package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/classroom-tools/classpick/internal/utils"
	"github.com/classroom-tools/classpick/pkg/challenge"
	"github.com/classroom-tools/classpick/pkg/config"
	"github.com/classroom-tools/classpick/pkg/spinner"
	"github.com/classroom-tools/classpick/pkg/store"
)

// challengeCmd represents the challenge command
var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Pick a random challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("categories")
		if source == "" {
			source = viper.GetString("categories")
		}
		cfg, err := config.Load(source)
		if err != nil {
			utils.Log.WithError(err).Warn("could not load categories configuration, using built-in default")
			cfg = config.Default()
		}
		challenges := cfg.Challenges
		if len(challenges) == 0 {
			challenges = config.Default().Challenges
		}

		storeFlag, _ := cmd.Flags().GetString("store")
		if storeFlag == "" {
			storeFlag = viper.GetString("store")
		}
		storePath, err := utils.GetAbsStorePath(storeFlag)
		if err != nil {
			return err
		}
		db, err := store.Open(storePath)
		if err != nil {
			return err
		}
		defer db.Close()

		picker := challenge.NewPicker(challenges, db, spinner.NewSource())

		if showLog, _ := cmd.Flags().GetBool("log"); showLog {
			log := picker.History()
			if len(log) == 0 {
				fmt.Println("No challenges picked yet.")
				return nil
			}
			for i := len(log) - 1; i >= 0; i-- {
				fmt.Println(log[i])
			}
			return nil
		}
		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			picker.ClearHistory()
			fmt.Println("Cleared the challenge log.")
			return nil
		}

		picked, ok := picker.Pick()
		if !ok {
			fmt.Println("No challenges configured.")
			return nil
		}
		fmt.Println(picked)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(challengeCmd)
	challengeCmd.Flags().BoolP("log", "", false, "Show past challenge picks instead of picking")
	challengeCmd.Flags().BoolP("clear", "", false, "Clear the challenge log")
}
