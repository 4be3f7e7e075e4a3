// Package genai generates post captions through an external chat-completion
// API and normalizes the result to a single clean paragraph.
package genai

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
	componentName  = "generation"
	requestTimeout = 60 * time.Second

	defaultAPIURL      = "https://api.openai.com/v1/chat/completions"
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.7

	systemPrompt = "You write social media captions. Reply with exactly one caption as a single " +
		"plain paragraph. Do not offer alternatives, do not number or label the output, and do " +
		"not use markdown or surrounding quotes."
)

// stopSequences curbs the model when it starts a second labeled option anyway.
var stopSequences = []string{"\nOption", "Option 2"}

// Config contains the settings for the chat-completion endpoint.
type Config struct {
	APIURL      string
	APIKey      string
	Model       string
	Temperature float64
}

// Client issues caption-generation requests.
type Client struct {
	rc          *resty.Client
	url         string
	model       string
	temperature float64
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Stop        []string  `json:"stop"`
	Messages    []message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// New constructs a generation client. The API key is required; URL, model,
// and temperature fall back to defaults.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, compose.ConfigError{Component: componentName, Keys: []string{"generation.api_key"}}
	}

	url := strings.TrimSpace(cfg.APIURL)
	if url == "" {
		url = defaultAPIURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	rc := resty.New().
		SetTimeout(requestTimeout).
		SetAuthToken(cfg.APIKey)

	return &Client{rc: rc, url: url, model: model, temperature: temperature}, nil
}

// Caption asks the model for one caption about the topic and normalizes the
// reply. A positive maxChars is forwarded to the model as a budget
// instruction; nothing truncates the result after the fact. When
// normalization yields nothing usable, ErrDegenerateOutput is returned so
// the caller can keep its existing caption.
func (c *Client) Caption(ctx context.Context, topic string, maxChars int) (string, error) {
	user := fmt.Sprintf("Write one caption for a social media post about: %s", strings.TrimSpace(topic))
	if maxChars > 0 {
		user += fmt.Sprintf(" Keep it under %d characters.", maxChars)
	}

	body := completionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Stop:        stopSequences,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: user},
		},
	}

	var out completionResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post(c.url)
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("generation request failed with status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", compose.ErrDegenerateOutput
	}

	raw := out.Choices[0].Message.Content
	logutil.Debugf("generation returned %d raw characters", len(raw))

	caption := compose.Normalize(raw)
	if caption == "" {
		return "", compose.ErrDegenerateOutput
	}
	return caption, nil
}
