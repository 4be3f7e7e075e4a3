package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webdevwork7/linkedin-zen-post/internal/assets"
	"github.com/webdevwork7/linkedin-zen-post/internal/config"
	"github.com/webdevwork7/linkedin-zen-post/internal/logutil"
	"github.com/webdevwork7/linkedin-zen-post/internal/photos"
)

func newSearchImageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search-image <query>",
		Short: "Find a stock image URL for a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetVerbose(verbose)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := photos.New(photos.Config{
				APIURL: cfg.Photos.APIURL,
				APIKey: cfg.Photos.APIKey,
			})
			if err != nil {
				return err
			}

			url, err := client.FirstImageURL(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
		Example: `  zen-post search-image "team collaboration"`,
	}
}

func newUploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a local image or video and print its hosted URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetVerbose(verbose)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := assets.New(assets.Config{
				CloudName:    cfg.Assets.CloudName,
				UploadPreset: cfg.Assets.UploadPreset,
			})
			if err != nil {
				return err
			}

			url, err := client.Upload(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
		Example: `  zen-post upload ./launch.mp4`,
	}
}
