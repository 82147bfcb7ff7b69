package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kirillkom/brandboost/internal/config"
	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/core/ports"
	"github.com/kirillkom/brandboost/internal/observability/metrics"
)

const (
	serviceName     = "brandboost-api"
	maxRequestBytes = 1 << 20
)

type Router struct {
	cfg       config.Config
	generator ports.ContentGenerator
	exporter  ports.ContentExporter
	analytics ports.AnalyticsService
	catalog   ports.ProductCatalog
	metrics   *metrics.HTTPServerMetrics
	now       func() time.Time
}

func NewRouter(
	cfg config.Config,
	generator ports.ContentGenerator,
	exporter ports.ContentExporter,
	analytics ports.AnalyticsService,
	catalog ports.ProductCatalog,
	httpMetrics *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:       cfg,
		generator: generator,
		exporter:  exporter,
		analytics: analytics,
		catalog:   catalog,
		metrics:   httpMetrics,
		now:       time.Now,
	}
}

func (rt *Router) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/v1/products", rt.listProducts)
	api.HandleFunc("/v1/products/", rt.getProductByID)
	api.HandleFunc("/v1/content/generate", rt.generateContent)
	api.HandleFunc("/v1/content/export", rt.exportContent)
	api.HandleFunc("/v1/content/exports/", rt.readExport)
	api.HandleFunc("/v1/stats", rt.stats)
	api.HandleFunc("/v1/analytics/overview", rt.analyticsOverview)
	api.HandleFunc("/v1/analytics/time-savings", rt.analyticsTimeSavings)
	api.HandleFunc("/v1/analytics/categories", rt.analyticsCategories)
	api.HandleFunc("/v1/analytics/tone-effectiveness", rt.analyticsToneEffectiveness)
	api.HandleFunc("/v1/analytics/insights", rt.analyticsInsights)
	api.HandleFunc("/v1/about", rt.about)

	var limited http.Handler = api
	limited = backpressureMiddleware(
		limited,
		rt.cfg.APIMaxInFlight,
		time.Duration(rt.cfg.APIBackpressureWaitMS)*time.Millisecond,
		rt.rejection("backpressure"),
	)
	limited = rateLimitMiddleware(limited, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst, rt.rejection("rate_limit"))

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}
	mux.Handle("/v1/", limited)

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = recoverMiddleware(handler)
	handler = accessLogMiddleware(handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) rejection(reason string) func() {
	if rt.metrics == nil {
		return nil
	}
	return func() { rt.metrics.RecordRejection(serviceName, reason) }
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"provider": rt.cfg.LLMProvider,
		"products": len(rt.catalog.List()),
	})
}

func (rt *Router) listProducts(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	products := rt.catalog.List()
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		filtered := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (rt *Router) getProductByID(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/products/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "product id is required"})
		return
	}

	product, err := rt.catalog.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

type generateRequest struct {
	ProductID   string          `json:"product_id"`
	Product     *domain.Product `json:"product"`
	ContentType string          `json:"content_type"`
	Tone        string          `json:"tone"`
	Language    string          `json:"language"`
}

func (rt *Router) generateContent(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sel, err := domain.ParseSelection(req.ContentType, req.Tone, req.Language)
	if err != nil {
		writeError(w, err)
		return
	}
	product, err := rt.resolveProduct(req)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := rt.generator.Generate(r.Context(), product, sel)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set(contentSourceHeader, string(result.Metadata.Source))
	writeJSON(w, http.StatusOK, result)
}

// resolveProduct prefers an inline product over a catalog lookup.
func (rt *Router) resolveProduct(req generateRequest) (domain.Product, error) {
	if req.Product != nil {
		return *req.Product, nil
	}
	id := strings.TrimSpace(req.ProductID)
	if id == "" {
		return domain.Product{}, domain.WrapError(domain.ErrInvalidInput, "generate content", fmt.Errorf("product_id or product is required"))
	}
	return rt.catalog.GetByID(id)
}

type exportRequest struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

func (rt *Router) exportContent(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req exportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	path, err := rt.exporter.Export(r.Context(), req.Content, req.Filename)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"path": path})
}

func (rt *Router) readExport(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/v1/content/exports/")
	text, err := rt.exporter.Read(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"filename": name, "content": text})
}

func (rt *Router) stats(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stats": rt.generator.Stats(),
		"kpis":  rt.generator.KPIs(),
	})
}

func (rt *Router) analyticsOverview(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, rt.analytics.Overview())
}

func (rt *Router) analyticsTimeSavings(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"points": rt.analytics.TimeSavings(rt.now())})
}

func (rt *Router) analyticsCategories(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": rt.analytics.CategoryDistribution()})
}

func (rt *Router) analyticsToneEffectiveness(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tones": rt.analytics.ToneEffectiveness()})
}

func (rt *Router) analyticsInsights(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, rt.analytics.Insights())
}

func (rt *Router) about(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, rt.analytics.About())
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	return false
}

func decodeJSON(w http.ResponseWriter, r *http.Request, out any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
