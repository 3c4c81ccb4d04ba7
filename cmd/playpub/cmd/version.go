// Copyright © 2018 One Concern

package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

// Build information, set by the linker
var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

// VersionInfo describes the build of this binary
type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	GitState  string `json:"gitState,omitempty"`
}

// NewVersionInfo collects build information
func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
	if Version != "" {
		ver.Version = Version
		if v, err := semver.ParseTolerant(Version); err == nil {
			ver.Version = "v" + v.String()
		}
		ver.GitState = "clean"
	}
	if GitState != "" {
		ver.GitState = GitState
	}
	return ver
}

func (v VersionInfo) String() string {
	state := v.GitState
	if state == "" {
		state = "unknown"
	}
	return fmt.Sprintf("Version: %s\nBuild date: %s\nCommit: %s\nWorking tree: %s\n",
		v.Version, v.BuildDate, v.GitCommit, state)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of playpub",
	Long: `Prints the version of playpub, with the date, commit and working tree state of its build.

Build information is set at link time, e.g.:
  go build -ldflags "-X github.com/oneconcern/playpub/cmd/playpub/cmd.Version=v1.0.0" ./cmd/playpub
`,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = logStdOut("%s", NewVersionInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
