// Package bedrock wraps Bedrock model invocation for the Anthropic messages
// API, which is what every model this service defaults to speaks.
package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/tidwall/gjson"
)

const anthropicVersion = "bedrock-2023-05-31"

// API is the subset of the SDK client this package relies on.
type API interface {
	InvokeModel(ctx context.Context, in *bedrockruntime.InvokeModelInput, opts ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Config tunes generation. Zero MaxTokens falls back to 4096.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// Client generates text through InvokeModel.
type Client struct {
	api API
	cfg Config
}

func New(api API, cfg Config) *Client {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	return &Client{api: api, cfg: cfg}
}

type content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type message struct {
	Role    string    `json:"role"`
	Content []content `json:"content"`
}

type invokeBody struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	System           string    `json:"system,omitempty"`
	Messages         []message `json:"messages"`
}

// Generate sends one user turn to model and returns the first text block of
// the reply.
func (c *Client) Generate(ctx context.Context, model, system, prompt string) (string, error) {
	body := invokeBody{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        c.cfg.MaxTokens,
		Temperature:      c.cfg.Temperature,
		System:           system,
		Messages: []message{
			{Role: "user", Content: []content{{Type: "text", Text: prompt}}},
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        b,
	})
	if err != nil {
		return "", fmt.Errorf("invoke %s: %w", model, err)
	}
	text := gjson.GetBytes(out.Body, "content.0.text")
	if !text.Exists() {
		stop := gjson.GetBytes(out.Body, "stop_reason").String()
		if stop == "" {
			stop = "unknown"
		}
		return "", fmt.Errorf("model %s returned no text (stop_reason=%s)", model, stop)
	}
	return text.String(), nil
}
