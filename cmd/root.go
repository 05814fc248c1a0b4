package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/classroom-tools/classpick/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	      _                     _      _
	  ___| | __ _ ___ ___ _ __ (_) ___| | __
	 / __| |/ _` + "`" + ` / __/ __| '_ \| |/ __| |/ /
	| (__| | (_| \__ \__ \ |_) | | (__|   <
	 \___|_|\__,_|___/___/ .__/|_|\___|_|\_\
	                     |_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "classpick",
	Short: "A classroom spinner and challenge picker for your terminal.",
	Long: LOGO + `classpick keeps a categorized spinner (students, teams, topics...) and a
random challenge picker, with picks, exclusions and history persisted locally
between runs.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.classpick.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("categories", "", "", "Categories JSON file path or URL (overrides the config file)")
	rootCmd.PersistentFlags().StringP("store", "", "", "Path to the SQLite store (default is ~/.config/classpick/classpick.sqlite)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".classpick")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.classpick.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("categories", "")
	viper.SetDefault("store", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
