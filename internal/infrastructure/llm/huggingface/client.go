package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm"
)

const DefaultBaseURL = "https://api-inference.huggingface.co"

// Client calls the Hugging Face Inference API text-generation task.
type Client struct {
	baseURL    string
	model      string
	token      string
	httpClient *http.Client
}

func New(baseURL, model, token string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      strings.Trim(model, "/"),
		token:      strings.TrimSpace(token),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type generateParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	DoSample       bool    `json:"do_sample"`
	TopP           float64 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generatedText struct {
	GeneratedText string `json:"generated_text"`
}

func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	payload := generateRequest{
		Inputs: req.Prompt,
		Parameters: generateParameters{
			MaxNewTokens:   req.MaxNewTokens,
			Temperature:    req.Temperature,
			DoSample:       req.DoSample,
			TopP:           req.TopP,
			ReturnFullText: false,
		},
	}

	var raw json.RawMessage
	if err := c.postJSON(ctx, "/models/"+c.model, payload, &raw); err != nil {
		return "", llm.WrapTemporary("huggingface generate", err)
	}
	return parseGeneratedText(raw)
}

// parseGeneratedText accepts both the list form [{"generated_text": ...}] and
// a bare object.
func parseGeneratedText(raw json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var items []generatedText
		if err := json.Unmarshal(raw, &items); err != nil {
			return "", fmt.Errorf("decode huggingface generate response: %w", err)
		}
		if len(items) == 0 {
			return "", domain.ErrEmptyCompletion
		}
		return strings.TrimSpace(items[0].GeneratedText), nil
	}

	var item generatedText
	if err := json.Unmarshal(raw, &item); err != nil {
		return "", fmt.Errorf("decode huggingface generate response: %w", err)
	}
	return strings.TrimSpace(item.GeneratedText), nil
}
