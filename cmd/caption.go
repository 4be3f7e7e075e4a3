package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webdevwork7/linkedin-zen-post/internal/config"
	"github.com/webdevwork7/linkedin-zen-post/internal/genai"
	"github.com/webdevwork7/linkedin-zen-post/internal/logutil"
)

func newCaptionCommand() *cobra.Command {
	var maxChars int

	cmd := &cobra.Command{
		Use:   "caption <topic>",
		Short: "Generate a single clean caption for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetVerbose(verbose)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			gen, err := genai.New(genai.Config{
				APIURL:      cfg.Generation.APIURL,
				APIKey:      cfg.Generation.APIKey,
				Model:       cfg.Generation.Model,
				Temperature: cfg.Generation.Temperature,
			})
			if err != nil {
				return err
			}

			caption, err := gen.Caption(cmd.Context(), strings.Join(args, " "), maxChars)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), caption)
			return nil
		},
		Example: `  zen-post caption "our new release" --max-chars 280`,
	}

	cmd.Flags().IntVar(&maxChars, "max-chars", 0, "Character budget requested from the generator")

	return cmd
}
