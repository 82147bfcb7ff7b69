package openaicompat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm"
)

// Client talks to any OpenAI-compatible chat completions endpoint.
type Client struct {
	client openai.Client
	model  string
}

func New(baseURL, apiKey, model string) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if strings.TrimSpace(baseURL) != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		MaxTokens: openai.Int(int64(req.MaxNewTokens)),
		TopP:      openai.Float(req.TopP),
	}
	if req.DoSample {
		params.Temperature = openai.Float(req.Temperature)
	} else {
		params.Temperature = openai.Float(0)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", llm.WrapTemporary("openai chat completion", statusError(err))
	}
	if len(resp.Choices) == 0 {
		return "", domain.ErrEmptyCompletion
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func statusError(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("openai request: %w", err)
	}
	return &llm.HTTPStatusError{
		Provider:   "openai",
		StatusCode: apiErr.StatusCode,
		Status:     fmt.Sprintf("%d %s", apiErr.StatusCode, http.StatusText(apiErr.StatusCode)),
		Body:       apiErr.Message,
	}
}
