package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/SujithaKC/AI-Recipes-maker/internal/infrastructure/config"
	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client calls the Google generative-language API.
type Client struct {
	config *config.Config
	client *resty.Client
}

// request is the generateContent request body.
type request struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
}

// Response is the generateContent response envelope.
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated answer in the envelope.
type Candidate struct {
	Content struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"content"`
}

// Text returns the payload at candidates[0].content.parts[0].text, or an
// empty string when the envelope carries no text.
func (r *Response) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}

// ParseResponse decodes a raw response body into the envelope.
func ParseResponse(body []byte) (*Response, error) {
	var resp Response
	if err := common.ParseJSONBytes(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse gemini response: %w", err)
	}
	return &resp, nil
}

// NewClient creates a Gemini client.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Gemini.BaseURL).
		SetTimeout(cfg.Gemini.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

// Generate sends prompt to the model and returns the HTTP status and raw
// response body. Transport failures are returned as errors; non-2xx statuses
// are not, interpreting them is the caller's concern.
func (c *Client) Generate(ctx context.Context, prompt string) (int, []byte, error) {
	req := request{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			MaxOutputTokens: c.config.Gemini.MaxTokens,
			Temperature:     0.7,
		},
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.config.Gemini.APIKey).
		SetBody(req).
		Post(fmt.Sprintf("/models/%s:generateContent", c.config.Gemini.Model))

	if err != nil {
		common.LogError("failed to send request to gemini",
			zap.Error(err),
			zap.String("model", c.config.Gemini.Model),
			zap.Duration("duration", time.Since(start)),
		)
		return 0, nil, fmt.Errorf("failed to send request to gemini: %w", err)
	}

	common.LogInfo("gemini request completed",
		zap.String("model", c.config.Gemini.Model),
		zap.Int("status", resp.StatusCode()),
		zap.Int("body_length", len(resp.Body())),
		zap.Duration("duration", time.Since(start)),
	)

	return resp.StatusCode(), resp.Body(), nil
}

// Close releases client resources.
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
