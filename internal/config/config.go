package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderGemini      = "gemini"
	ProviderOllama      = "ollama"
	ProviderOffline     = "offline"
)

type Config struct {
	APIPort  string
	LogLevel string

	CatalogPath string
	ExportDir   string

	LLMProvider       string
	LLMTimeoutSeconds int

	HFAPIURL   string
	HFModel    string
	HFAPIToken string

	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	OllamaURL   string
	OllamaModel string

	BreakerEnabled            bool
	BreakerMinRequests        int
	BreakerFailureRatio       float64
	BreakerOpenTimeoutSeconds int

	APIRateLimitRPS       float64
	APIRateLimitBurst     int
	APIMaxInFlight        int
	APIBackpressureWaitMS int

	MCPMetricsPort string
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		CatalogPath: mustEnv("CATALOG_PATH", "sample_data/products.csv"),
		ExportDir:   mustEnv("EXPORT_DIR", "reports"),

		LLMProvider:       strings.ToLower(mustEnv("LLM_PROVIDER", ProviderHuggingFace)),
		LLMTimeoutSeconds: mustEnvInt("LLM_TIMEOUT_SECONDS", 20),

		HFAPIURL:   mustEnv("HF_API_URL", "https://api-inference.huggingface.co"),
		HFModel:    mustEnv("HF_MODEL", "mistralai/Mistral-7B-Instruct-v0.1"),
		HFAPIToken: firstEnv("HF_API_TOKEN", "HUGGINGFACE_API_TOKEN"),

		OpenAIBaseURL: mustEnv("OPENAI_BASE_URL", ""),
		OpenAIAPIKey:  mustEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   mustEnv("OPENAI_MODEL", "gpt-4o-mini"),

		GeminiAPIKey:  mustEnv("GEMINI_API_KEY", ""),
		GeminiModel:   mustEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL: mustEnv("GEMINI_BASE_URL", ""),

		OllamaURL:   mustEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel: mustEnv("OLLAMA_MODEL", "llama3.1"),

		BreakerEnabled:            mustEnvBool("BREAKER_ENABLED", true),
		BreakerMinRequests:        mustEnvInt("BREAKER_MIN_REQUESTS", 5),
		BreakerFailureRatio:       mustEnvFloat("BREAKER_FAILURE_RATIO", 0.6),
		BreakerOpenTimeoutSeconds: mustEnvInt("BREAKER_OPEN_TIMEOUT_SECONDS", 30),

		APIRateLimitRPS:       mustEnvFloat("API_RATE_LIMIT_RPS", 0),
		APIRateLimitBurst:     mustEnvInt("API_RATE_LIMIT_BURST", 0),
		APIMaxInFlight:        mustEnvInt("API_MAX_IN_FLIGHT", 0),
		APIBackpressureWaitMS: mustEnvInt("API_BACKPRESSURE_WAIT_MS", 250),

		MCPMetricsPort: mustEnv("MCP_METRICS_PORT", ""),
	}
}

// Model returns the model name of the configured provider.
func (c Config) Model() string {
	switch c.LLMProvider {
	case ProviderOpenAI:
		return c.OpenAIModel
	case ProviderGemini:
		return c.GeminiModel
	case ProviderOllama:
		return c.OllamaModel
	case ProviderOffline:
		return "none"
	default:
		return c.HFModel
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
