// Package ai proxies analysis requests to an OpenAI-compatible chat service.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Result is the outcome of one analysis call. When the model's reply decodes
// as JSON, Structured holds it verbatim; otherwise RawText carries the reply
// unchanged. A non-decodable reply is an observable outcome, not an error.
type Result struct {
	Structured json.RawMessage
	RawText    string
}

func (r Result) IsStructured() bool {
	return r.Structured != nil
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := "gpt-4o-mini"
	if cfg.Model != "" {
		model = cfg.Model
	}
	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

// AnalyzeStylometry compares writing style across the given texts.
func (c *Client) AnalyzeStylometry(ctx context.Context, texts []string) (Result, error) {
	numbered := make([]string, 0, len(texts))
	for i, text := range texts {
		numbered = append(numbered, fmt.Sprintf("Text %d: %s", i+1, text))
	}
	prompt := fmt.Sprintf(stylometryPrompt, strings.Join(numbered, "\n\n"))
	return c.complete(ctx, stylometrySystemPrompt, prompt, 0.3)
}

// ExtractEntities pulls typed identifiers (usernames, emails, wallets, urls)
// out of free text.
func (c *Client) ExtractEntities(ctx context.Context, text string) (Result, error) {
	prompt := fmt.Sprintf(extractionPrompt, text)
	return c.complete(ctx, extractionSystemPrompt, prompt, 0.2)
}

// AssessRisk scores an entity 1-5 given its record and investigation context.
func (c *Client) AssessRisk(ctx context.Context, entity map[string]any, investigationContext string) (Result, error) {
	entityJSON, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("encoding entity: %w", err)
	}
	prompt := fmt.Sprintf(riskPrompt, string(entityJSON), investigationContext)
	return c.complete(ctx, riskSystemPrompt, prompt, 0.3)
}

func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (Result, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: temperature,
	})
	if err != nil {
		return Result{}, fmt.Errorf("calling model: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, errors.New("no response from model")
	}
	return decodeResult(resp.Choices[0].Message.Content), nil
}

func decodeResult(content string) Result {
	cleaned := cleanJSONResponse(content)
	var decoded any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return Result{RawText: content}
	}
	switch decoded.(type) {
	case map[string]any, []any:
		return Result{Structured: json.RawMessage(cleaned)}
	default:
		// a bare string or number is not a usable analysis document
		return Result{RawText: content}
	}
}

// cleanJSONResponse strips markdown code fences that chat models often wrap
// around JSON output.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx != -1 {
			content = content[idx+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}
