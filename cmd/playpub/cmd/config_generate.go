// Copyright © 2018 One Concern

package cmd

import (
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var configGen = &cobra.Command{
	Use:   "generate",
	Short: "Generate a config",
	Long: `Generate a config file from the global flags (--package, --credential, --gcs-credential, --track, --loglevel, --metrics).

The config file is placed in $HOME/.playpub/playpub.yaml unless --output is specified.`,
	Aliases: []string{"create"},
	Run: func(cmd *cobra.Command, args []string) {
		target := playpubFlags.config.output
		if target == "" {
			u, err := user.Current()
			if u == nil || err != nil {
				wrapFatalln("could not get home directory for user", err)
				return
			}
			target = filepath.Join(u.HomeDir, ".playpub", "playpub.yaml")
		}

		cfg := CLIConfig{
			Credential:    playpubFlags.root.credential,
			GCSCredential: playpubFlags.root.gcsCred,
			Package:       playpubFlags.root.packageName,
			Track:         playpubFlags.root.track,
			LogLevel:      playpubFlags.root.logLevel,
			Metrics:       playpubFlags.root.metrics,
		}
		o, err := yaml.Marshal(cfg)
		if err != nil {
			wrapFatalln("serialize config to yaml", err)
			return
		}
		if err = os.MkdirAll(filepath.Dir(target), 0700); err != nil {
			wrapFatalln("create config directory", err)
			return
		}
		if err = ioutil.WriteFile(target, o, 0600); err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Printf("config written to %s", target)
	},
}

func init() {
	addOutputFlag(configGen)

	configCmd.AddCommand(configGen)
}
