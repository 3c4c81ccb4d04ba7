// Copyright © 2018 One Concern

package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playpub",
	Short: "playpub publishes Android builds to Google Play",
	Long: `playpub publishes Android builds and store listing assets to Google Play.

Every command runs a single edit transaction on the Google Play Android Publisher API:
the edit is created, mutated (uploads, track assignments), validated, then committed.
Nothing is visible on the store until the edit is committed.

Exit codes:
  0  the edit has been committed
  1  the operation failed: nothing has been published
  2  invalid usage
`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		usageFatalf("%v", err)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addPackageFlag(rootCmd)
	addCredentialFlag(rootCmd)
	addGCSCredentialFlag(rootCmd)
	addTrackFlag(rootCmd)
	addChangeLogFlag(rootCmd)
	addLogLevel(rootCmd)
	addMetricsFlag(rootCmd)
	addEditFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if os.Getenv("PLAYPUB_CONFIG") != "" {
		// Use config file from the env var.
		viper.SetConfigFile(os.Getenv("PLAYPUB_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.playpub")
		viper.AddConfigPath("/etc/playpub")
		viper.SetConfigName("playpub")
	}

	viper.SetEnvPrefix("playpub")
	for _, key := range configKeys {
		_ = viper.BindEnv(key)
	}
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("invalid configuration", err)
		return
	}
	playpubFlags.setDefaultsFromConfig(config)
}
