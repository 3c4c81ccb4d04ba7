// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/playpub/pkg/model"
	"github.com/spf13/cobra"
)

var promoteCmd = &cobra.Command{
	Use:   "promote-to",
	Short: "Promote the current release of a track to another track",
	Long: `Promote the current release of the track specified by --track to the target track, with a new status.

The release keeps its name, version codes and release notes. The edit is committed even when
the target track could not be updated, as long as the remote validation succeeds.

Example:
  playpub promote-to --package com.example.app --credential key.json --track beta \
    --target-track production --status completed
`,
	Aliases: []string{"promoteTo"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		optionInputs := newCliOptionInputs(config, &playpubFlags)

		source, err := optionInputs.track()
		if err != nil {
			usageFatalf("invalid --%s: %v", trackFlag, err)
			return
		}
		target, err := model.ParseTrackName(playpubFlags.promote.target)
		if err != nil {
			usageFatalf("invalid --target-track: %v", err)
			return
		}
		releaseStatus, err := model.ParseReleaseStatus(playpubFlags.promote.status)
		if err != nil {
			usageFatalf("invalid --status: %v", err)
			return
		}

		p, ok := newPublisher(ctx, optionInputs)
		if !ok {
			return
		}
		outcome, err := p.Promote(ctx, source, target, releaseStatus)
		exitOnOutcome("promote", outcome, err)
	},
}

func init() {
	requireFlags(promoteCmd,
		addTargetTrackFlag(promoteCmd),
	)
	addStatusFlag(promoteCmd, &playpubFlags.promote.status)

	rootCmd.AddCommand(promoteCmd)
}
