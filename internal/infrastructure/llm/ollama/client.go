package ollama

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.1"
)

// Client calls a local Ollama server's non-streaming /api/generate.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func New(baseURL, model string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	// Ollama has no do_sample switch; temperature 0 is its greedy mode.
	temperature := req.Temperature
	if !req.DoSample {
		temperature = 0
	}
	payload := generateRequest{
		Model:  c.model,
		Prompt: req.Prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: temperature,
			TopP:        req.TopP,
			NumPredict:  req.MaxNewTokens,
		},
	}

	var response struct {
		Response string `json:"response"`
	}
	if err := c.postJSON(ctx, "/api/generate", payload, &response); err != nil {
		return "", llm.WrapTemporary("ollama generate", err)
	}
	return strings.TrimSpace(response.Response), nil
}
