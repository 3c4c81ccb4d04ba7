// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configKeys may be set in the config file, or as PLAYPUB_* environment variables
var configKeys = []string{"credential", "gcscredential", "package", "track", "loglevel", "metrics"}

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Credential    string `json:"credential" yaml:"credential"`                           // Location of the service account key
	GCSCredential string `json:"gcscredential,omitempty" yaml:"gcscredential,omitempty"` // Key file used to read gs:// locations
	Package       string `json:"package" yaml:"package"`                                 // Package name of the application
	Track         string `json:"track,omitempty" yaml:"track,omitempty"`                 // Default track
	LogLevel      string `json:"loglevel,omitempty" yaml:"loglevel,omitempty"`           // Default log level
	Metrics       bool   `json:"metrics,omitempty" yaml:"metrics,omitempty"`             // Print upload metrics
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage a config",
	Long: `Commands to manage playpub CLI config.

Configuration for playpub is the common set of flags that are needed for most commands and do not change across runs,
such as the package name and the location of the service account key.

The config file is playpub.yaml, searched in the current directory, $HOME/.playpub and /etc/playpub,
or specified by $PLAYPUB_CONFIG. Settings may be overridden by environment variables, e.g. PLAYPUB_PACKAGE.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
