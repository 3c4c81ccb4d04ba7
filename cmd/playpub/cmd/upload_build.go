// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/playpub/pkg/core"
	"github.com/oneconcern/playpub/pkg/model"
	"github.com/spf13/cobra"
)

var uploadBuildCmd = &cobra.Command{
	Use:   "upload-build",
	Short: "Upload a build to Google Play",
	Long: `Upload an app bundle (.aab) or a package (.apk) and assign it to a track, as the single release of this track.

A main expansion file may be attached to a package. Bundles do not support expansion files.

Example:
  playpub upload-build --package com.example.app --credential key.json --track beta \
    --artifact app-release.aab --release-name 1.2.0 --status completed
`,
	Aliases: []string{"uploadBuild"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		optionInputs := newCliOptionInputs(config, &playpubFlags)

		track, err := optionInputs.track()
		if err != nil {
			usageFatalf("invalid --%s: %v", trackFlag, err)
			return
		}
		releaseStatus, err := model.ParseReleaseStatus(playpubFlags.build.status)
		if err != nil {
			usageFatalf("invalid --status: %v", err)
			return
		}
		artifact, err := resolveGlob(playpubFlags.build.artifact)
		if err != nil {
			wrapFatalln("resolve artifact", err)
			return
		}
		expansion, err := resolveGlob(playpubFlags.build.expansion)
		if err != nil {
			wrapFatalln("resolve expansion file", err)
			return
		}
		notes, err := optionInputs.releaseNotes(ctx)
		if err != nil {
			wrapFatalln("read change log", err)
			return
		}

		p, ok := newPublisher(ctx, optionInputs)
		if !ok {
			return
		}
		outcome, err := p.UploadAndAddToTrack(ctx, core.UploadRequest{
			ReleaseName:   playpubFlags.build.releaseName,
			ArtifactPath:  artifact,
			Status:        releaseStatus,
			ExpansionPath: expansion,
			Track:         track,
			ReleaseNotes:  notes,
		})
		exitOnOutcome("upload build", outcome, err)
	},
}

func init() {
	requireFlags(uploadBuildCmd,
		addArtifactFlag(uploadBuildCmd),
	)
	addExpansionFlag(uploadBuildCmd)
	addReleaseNameFlag(uploadBuildCmd)
	addStatusFlag(uploadBuildCmd, &playpubFlags.build.status)

	rootCmd.AddCommand(uploadBuildCmd)
}
