/*
Copyright © 2025 webdevwork7

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webdevwork7/linkedin-zen-post/internal/compose"
	"github.com/webdevwork7/linkedin-zen-post/internal/config"
	"github.com/webdevwork7/linkedin-zen-post/internal/genai"
	"github.com/webdevwork7/linkedin-zen-post/internal/logutil"
	"github.com/webdevwork7/linkedin-zen-post/internal/webhook"
)

var (
	platformFlag   string
	typeFlag       string
	captionFlag    string
	imageURLFlag   string
	videoURLFlag   string
	coverURLFlag   string
	articleURLFlag string
	carouselFlag   []string
	nodeIDFlag     string
	generateFlag   string
	maxCharsFlag   int
	dryRun         bool
	verbose        bool
)

// Execute runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zen-post [caption]",
		Short: "Compose and dispatch social media posts",
		Long: "zen-post composes a LinkedIn or Instagram post and dispatches it to your " +
			"automation webhook. Provide the caption as an argument, with --caption, via stdin, " +
			"or let --generate write one for you.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
		Example: `  zen-post "Ship it!" --platform linkedin --type text
  zen-post --type image --image-url https://cdn.example.com/team.jpg -m "New office"
  zen-post --platform instagram --type carousel -m "Launch week" \
      --carousel-url https://cdn.example.com/1.jpg --carousel-url https://cdn.example.com/2.jpg
  zen-post --generate "our hackathon win" --max-chars 280 --dry-run`,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")

	cmd.Flags().StringVarP(&platformFlag, "platform", "p", "linkedin", "Target platform (linkedin, instagram)")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "text", "Post type for the platform")
	cmd.Flags().StringVarP(&captionFlag, "caption", "m", "", "Caption text for the post")
	cmd.Flags().StringVar(&imageURLFlag, "image-url", "", "Hosted image URL")
	cmd.Flags().StringVar(&videoURLFlag, "video-url", "", "Hosted video URL")
	cmd.Flags().StringVar(&coverURLFlag, "cover-image-url", "", "Hosted reel cover image URL")
	cmd.Flags().StringVar(&articleURLFlag, "article-url", "", "Article link to share")
	cmd.Flags().StringSliceVar(&carouselFlag, "carousel-url", nil, "Hosted carousel image URL (repeatable, minimum 2)")
	cmd.Flags().StringVar(&nodeIDFlag, "node-id", "", "Target node id (overrides config)")
	cmd.Flags().StringVarP(&generateFlag, "generate", "g", "", "Generate the caption from this topic")
	cmd.Flags().IntVar(&maxCharsFlag, "max-chars", 0, "Character budget requested from the generator")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the payload without dispatching")
	cmd.Flags().SortFlags = false

	cmd.AddCommand(newCaptionCommand())
	cmd.AddCommand(newSearchImageCommand())
	cmd.AddCommand(newUploadCommand())
	cmd.AddCommand(newCompletionCommand())

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logutil.SetVerbose(verbose)

	postType, err := compose.ParsePostType(platformFlag, typeFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	caption, err := resolveCaption(cmd, args)
	if err != nil {
		return err
	}

	if strings.TrimSpace(generateFlag) != "" {
		caption, err = generateCaption(cmd, cfg, caption)
		if err != nil {
			return err
		}
	}

	state := &compose.PostState{
		Type:          postType,
		Caption:       caption,
		ImageURL:      imageURLFlag,
		VideoURL:      videoURLFlag,
		CoverImageURL: coverURLFlag,
		ArticleURL:    articleURLFlag,
		CarouselURLs:  carouselFlag,
	}

	nodeID := strings.TrimSpace(nodeIDFlag)
	if nodeID == "" {
		nodeID = strings.TrimSpace(cfg.Webhook.NodeID)
	}

	if dryRun {
		return printDryRun(cmd.OutOrStdout(), state, nodeID)
	}

	dispatcher, err := webhook.New(webhook.Config{URL: cfg.Webhook.URL})
	if err != nil {
		return err
	}

	pipeline := compose.NewPipeline(dispatcher, nodeID)
	result, err := pipeline.Submit(ctx, state)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "post dispatched (request %s)\n", result.RequestID)
	return nil
}

func generateCaption(cmd *cobra.Command, cfg *config.Config, existing string) (string, error) {
	gen, err := genai.New(genai.Config{
		APIURL:      cfg.Generation.APIURL,
		APIKey:      cfg.Generation.APIKey,
		Model:       cfg.Generation.Model,
		Temperature: cfg.Generation.Temperature,
	})
	if err != nil {
		return "", err
	}

	caption, err := gen.Caption(cmd.Context(), generateFlag, maxCharsFlag)
	if errors.Is(err, compose.ErrDegenerateOutput) && existing != "" {
		logutil.Warnf("generated caption was unusable, keeping the provided caption")
		return existing, nil
	}
	if err != nil {
		return "", err
	}
	return caption, nil
}

func printDryRun(out io.Writer, state *compose.PostState, nodeID string) error {
	missing, err := compose.Missing(state)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return compose.ValidationError{Type: state.Type, Missing: missing}
	}

	payload, err := compose.Build(state, nodeID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	fmt.Fprintf(out, "[dry-run] would dispatch %s payload:\n%s\n", state.Type, data)
	return nil
}

func resolveCaption(cmd *cobra.Command, args []string) (string, error) {
	var caption string

	if captionFlag != "" {
		caption = captionFlag
	}

	if len(args) > 0 {
		if caption != "" {
			return "", errors.New("provide the caption either as an argument or with --caption, not both")
		}
		caption = strings.Join(args, " ")
	}

	if caption != "" {
		return strings.TrimSpace(caption), nil
	}

	stdin := cmd.InOrStdin()
	if file, ok := stdin.(*os.File); ok {
		info, err := file.Stat()
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if (info.Mode() & os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return "", fmt.Errorf("read stdin: %w", err)
			}
			caption = strings.TrimSpace(string(data))
		}
	}

	// An empty caption is fine here; the validator decides whether the
	// selected post type requires one.
	return caption, nil
}
