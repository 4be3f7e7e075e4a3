// Package assets uploads local media files to an external asset host and
// returns the hosted URL.
package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/webdevwork7/linkedin-zen-post/internal/compose"
	"github.com/webdevwork7/linkedin-zen-post/internal/logutil"
)

const (
	componentName  = "assets"
	requestTimeout = 120 * time.Second

	uploadURLTemplate = "https://api.cloudinary.com/v1_1/%s/auto/upload"
)

// Config contains the settings for unsigned uploads to the asset host.
type Config struct {
	// UploadURL overrides the URL derived from CloudName, mainly for tests.
	UploadURL    string
	CloudName    string
	UploadPreset string
}

// Client uploads files via multipart form posts.
type Client struct {
	rc     *resty.Client
	url    string
	preset string
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// New constructs an asset upload client. Cloud name (or an explicit upload
// URL) and the upload preset are required.
func New(cfg Config) (*Client, error) {
	url := strings.TrimSpace(cfg.UploadURL)

	var missing []string
	if url == "" {
		if name := strings.TrimSpace(cfg.CloudName); name != "" {
			url = fmt.Sprintf(uploadURLTemplate, name)
		} else {
			missing = append(missing, "assets.cloud_name")
		}
	}
	preset := strings.TrimSpace(cfg.UploadPreset)
	if preset == "" {
		missing = append(missing, "assets.upload_preset")
	}
	if len(missing) > 0 {
		return nil, compose.ConfigError{Component: componentName, Keys: missing}
	}

	return &Client{
		rc:     resty.New().SetTimeout(requestTimeout),
		url:    url,
		preset: preset,
	}, nil
}

// Upload sends the file as a multipart form with the configured upload
// preset and returns the resulting hosted URL.
func (c *Client) Upload(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("asset %q not found", path)
		}
		return "", fmt.Errorf("stat asset: %w", err)
	}

	var out uploadResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetFile("file", path).
		SetFormData(map[string]string{"upload_preset": c.preset}).
		SetResult(&out).
		Post(c.url)
	if err != nil {
		return "", fmt.Errorf("upload asset: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("upload failed with status %d", resp.StatusCode())
	}

	url := out.SecureURL
	if url == "" {
		url = out.URL
	}
	if url == "" {
		return "", fmt.Errorf("upload response missing asset URL")
	}

	logutil.Debugf("asset uploaded: %s", url)
	return url, nil
}
