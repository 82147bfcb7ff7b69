package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kirillkom/brandboost/internal/config"
	"github.com/kirillkom/brandboost/internal/core/ports"
	"github.com/kirillkom/brandboost/internal/core/usecase"
	"github.com/kirillkom/brandboost/internal/infrastructure/catalog"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm/gemini"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm/huggingface"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm/offline"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm/ollama"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm/openaicompat"
	"github.com/kirillkom/brandboost/internal/infrastructure/resilience"
	"github.com/kirillkom/brandboost/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/brandboost/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Catalog    *catalog.Repository
	Guard      *llm.Guard
	GenerateUC *usecase.GenerateContentUseCase
	ExportUC   *usecase.ExportUseCase
	Analytics  *usecase.AnalyticsUseCase

	Registry          *prometheus.Registry
	HTTPMetrics       *metrics.HTTPServerMetrics
	GenerationMetrics *metrics.GenerationMetrics
}

// New wires the application for one process. service labels every metric
// the process exports.
func New(ctx context.Context, cfg config.Config, service string) (*App, error) {
	repo, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	storage, err := localfs.New(cfg.ExportDir)
	if err != nil {
		return nil, fmt.Errorf("init export storage: %w", err)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPServerMetrics(service, registry)
	genMetrics := metrics.NewGenerationMetrics(service, registry)

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init llm provider: %w", err)
	}

	executor := resilience.NewExecutor(resilience.FromSettings(cfg, genMetrics.RecordBreakerState))
	guard := llm.NewGuard(provider, executor, "")

	generateUC := usecase.NewGenerateContentUseCase(guard,
		usecase.WithRecorder(genMetrics),
		usecase.WithRemoteTimeout(time.Duration(cfg.LLMTimeoutSeconds)*time.Second),
	)
	exportUC := usecase.NewExportUseCase(storage, genMetrics)
	analytics := usecase.NewAnalyticsUseCase(generateUC, repo, cfg.LLMProvider, cfg.Model())

	slog.Info("app_initialized",
		"service", service,
		"provider", cfg.LLMProvider,
		"model", cfg.Model(),
		"products", len(repo.List()),
		"export_dir", cfg.ExportDir,
	)

	return &App{
		Config: cfg,

		Catalog:    repo,
		Guard:      guard,
		GenerateUC: generateUC,
		ExportUC:   exportUC,
		Analytics:  analytics,

		Registry:          registry,
		HTTPMetrics:       httpMetrics,
		GenerationMetrics: genMetrics,
	}, nil
}

func newProvider(ctx context.Context, cfg config.Config) (ports.TextGenerator, error) {
	switch cfg.LLMProvider {
	case config.ProviderHuggingFace:
		if cfg.HFAPIToken == "" {
			slog.Warn("llm_provider_unauthenticated", "provider", cfg.LLMProvider)
		}
		return huggingface.New(cfg.HFAPIURL, cfg.HFModel, cfg.HFAPIToken), nil
	case config.ProviderOpenAI:
		return openaicompat.New(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			// Without a key every call would fail anyway; serve fallback copy.
			slog.Warn("llm_provider_unconfigured", "provider", cfg.LLMProvider, "missing", "GEMINI_API_KEY")
			return offline.New(), nil
		}
		return gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	case config.ProviderOllama:
		return ollama.New(cfg.OllamaURL, cfg.OllamaModel), nil
	case config.ProviderOffline:
		return offline.New(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}
