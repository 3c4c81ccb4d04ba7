// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/playpub/pkg/core"
	"github.com/oneconcern/playpub/pkg/model"
	"github.com/spf13/cobra"
)

var uploadImageCmd = &cobra.Command{
	Use:   "upload-image",
	Short: "Upload an image to the store listing",
	Long: `Upload an image into a slot of the store listing, for some language.

The image is added to the images already in this slot.

Example:
  playpub upload-image --package com.example.app --credential key.json --image-type icon --image icon.png
`,
	Aliases: []string{"uploadImage"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		optionInputs := newCliOptionInputs(config, &playpubFlags)

		track, err := optionInputs.track()
		if err != nil {
			usageFatalf("invalid --%s: %v", trackFlag, err)
			return
		}
		imageType, err := model.ParseImageType(playpubFlags.image.imageType)
		if err != nil {
			usageFatalf("invalid --image-type: %v", err)
			return
		}
		image, err := resolveGlob(playpubFlags.image.path)
		if err != nil {
			wrapFatalln("resolve image", err)
			return
		}

		p, ok := newPublisher(ctx, optionInputs)
		if !ok {
			return
		}
		outcome, err := p.UploadImage(ctx, core.ImageRequest{
			ImageType: imageType,
			Path:      image,
			Language:  playpubFlags.image.language,
			Track:     track,
		})
		exitOnOutcome("upload image", outcome, err)
	},
}

func init() {
	requireFlags(uploadImageCmd,
		addImageTypeFlag(uploadImageCmd),
		addImageFlag(uploadImageCmd),
	)
	addLanguageFlag(uploadImageCmd)

	rootCmd.AddCommand(uploadImageCmd)
}
