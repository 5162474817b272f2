package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"aicompliance/internal/config"
)

var errEmptyCompletion = errors.New("empty completion from model")

// LLMClient calls the Gemini API. All callers are expected to degrade
// gracefully when the API is not configured or a call fails.
type LLMClient struct {
	config *config.AIConfig
	client *resty.Client
}

// NewLLMClient creates a Gemini client from the default AI config
func NewLLMClient() *LLMClient {
	cfg := config.DefaultAIConfig()
	return &LLMClient{
		config: cfg,
		client: resty.New().SetTimeout(time.Duration(cfg.TimeoutMS) * time.Millisecond),
	}
}

// IsEnabled returns true if an API key is configured
func (c *LLMClient) IsEnabled() bool {
	return c.config.IsEnabled()
}

// Complete sends a prompt to the chat model and returns the text answer
func (c *LLMClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.generate(ctx, c.config.Models.Chat, systemPrompt, userPrompt)
}

// Summarize sends a prompt to the news model and returns the text answer
func (c *LLMClient) Summarize(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, c.config.Models.NewsSummary, "", prompt)
}

func (c *LLMClient) generate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": userPrompt},
				},
			},
		},
	}
	if systemPrompt != "" {
		body["systemInstruction"] = map[string]interface{}{
			"parts": []map[string]string{
				{"text": systemPrompt},
			},
		}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.config.APIKey).
		SetBody(body).
		Post(c.config.ModelEndpoint(model))
	if err != nil {
		return "", err
	}

	text := gjson.Get(resp.String(), "candidates.0.content.parts.0.text").String()
	if text == "" {
		return "", errEmptyCompletion
	}

	return text, nil
}
