// Package webhook dispatches built post payloads to the automation webhook.
package webhook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/webdevwork7/linkedin-zen-post/internal/compose"
	"github.com/webdevwork7/linkedin-zen-post/internal/logutil"
)

const (
	dispatcherName = "webhook"
	requestTimeout = 30 * time.Second

	maxErrorBody = 512
)

// Config contains the settings needed to reach the automation endpoint.
type Config struct {
	URL string
}

// Client posts payloads to a single automation webhook URL.
type Client struct {
	rc  *resty.Client
	url string
}

// New constructs a webhook dispatcher. A missing URL is a configuration
// error, reported before any dispatch is attempted.
func New(cfg Config) (*Client, error) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return nil, compose.ConfigError{Component: dispatcherName, Keys: []string{"webhook.url"}}
	}

	rc := resty.New().
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", "linkedin-zen-post/1")

	return &Client{rc: rc, url: url}, nil
}

// Name identifies the dispatcher.
func (c *Client) Name() string { return dispatcherName }

// Dispatch performs exactly one POST of the payload as JSON. Any non-2xx
// response or transport failure is surfaced as a TransportError; there are
// no retries.
func (c *Client) Dispatch(ctx context.Context, requestID string, payload compose.Payload) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", requestID).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return compose.TransportError{Err: err}
	}

	if resp.IsError() {
		return compose.TransportError{
			Status: resp.StatusCode(),
			Err:    fmt.Errorf("%s", bodySnippet(resp.Body())),
		}
	}

	logutil.Debugf("webhook accepted payload: status=%d request_id=%s", resp.StatusCode(), requestID)
	return nil
}

func bodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "empty response body"
	}
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	return s
}
