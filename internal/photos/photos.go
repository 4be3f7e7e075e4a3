// Package photos finds stock images through an external photo search API.
package photos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/webdevwork7/linkedin-zen-post/internal/compose"
)

const (
	componentName  = "photos"
	requestTimeout = 30 * time.Second

	defaultAPIURL = "https://api.pexels.com/v1/search"
)

// Config contains the settings for the photo search endpoint.
type Config struct {
	APIURL string
	APIKey string
}

// Client searches for photos matching a query.
type Client struct {
	rc  *resty.Client
	url string
	key string
}

type searchResponse struct {
	Photos []struct {
		Src struct {
			Large2x  string `json:"large2x"`
			Large    string `json:"large"`
			Original string `json:"original"`
		} `json:"src"`
	} `json:"photos"`
}

// New constructs a photo search client. The API key is required.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, compose.ConfigError{Component: componentName, Keys: []string{"photos.api_key"}}
	}

	url := strings.TrimSpace(cfg.APIURL)
	if url == "" {
		url = defaultAPIURL
	}

	return &Client{
		rc:  resty.New().SetTimeout(requestTimeout),
		url: url,
		key: cfg.APIKey,
	}, nil
}

// FirstImageURL returns the large-resolution URL of the first search result
// for the query.
func (c *Client) FirstImageURL(ctx context.Context, query string) (string, error) {
	var out searchResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Authorization", c.key).
		SetQueryParams(map[string]string{
			"query":    strings.TrimSpace(query),
			"per_page": "1",
		}).
		SetResult(&out).
		Get(c.url)
	if err != nil {
		return "", fmt.Errorf("photo search: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("photo search failed with status %d", resp.StatusCode())
	}
	if len(out.Photos) == 0 {
		return "", fmt.Errorf("no photos found for %q", query)
	}

	src := out.Photos[0].Src
	for _, u := range []string{src.Large2x, src.Large, src.Original} {
		if u != "" {
			return u, nil
		}
	}
	return "", fmt.Errorf("photo result for %q has no usable URL", query)
}
