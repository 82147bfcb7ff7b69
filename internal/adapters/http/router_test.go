package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirillkom/brandboost/internal/config"
	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/core/ports"
	"github.com/kirillkom/brandboost/internal/core/usecase"
	"github.com/kirillkom/brandboost/internal/infrastructure/catalog"
	"github.com/kirillkom/brandboost/internal/infrastructure/llm/offline"
	"github.com/kirillkom/brandboost/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/brandboost/internal/observability/metrics"
)

var testProducts = []domain.Product{
	{ID: "1", Name: "Aqua Bottle", Category: "Drinkware", Features: "Insulated;BPA-free", TargetAudience: "Athletes"},
	{ID: "2", Name: "Glow Serum", Category: "Skincare", Features: "Vitamin C", TargetAudience: "Skincare fans"},
	{ID: "3", Name: "Plain Tote", Category: " ", Features: "Canvas", TargetAudience: "Shoppers"},
}

type textGeneratorStub struct {
	text string
}

func (s textGeneratorStub) Generate(context.Context, domain.GenerationRequest) (string, error) {
	return s.text, nil
}

type testServer struct {
	handler   http.Handler
	exportDir string
}

func newTestServer(t *testing.T, cfg config.Config, gen ports.TextGenerator) testServer {
	t.Helper()
	exportDir := filepath.Join(t.TempDir(), "reports")
	storage, err := localfs.New(exportDir)
	require.NoError(t, err)

	repo := catalog.NewRepository(testProducts)
	generateUC := usecase.NewGenerateContentUseCase(gen)
	exportUC := usecase.NewExportUseCase(storage, nil)
	analyticsUC := usecase.NewAnalyticsUseCase(generateUC, repo, "offline", "none")

	router := NewRouter(cfg, generateUC, exportUC, analyticsUC, repo, metrics.NewHTTPServerMetrics("test", nil))
	return testServer{handler: router.Handler(), exportDir: exportDir}
}

func (s testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	res := httptest.NewRecorder()
	s.handler.ServeHTTP(res, req)
	return res
}

func decodeBody(t *testing.T, res *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &out), res.Body.String())
	return out
}

func TestHealthzReportsCatalogSize(t *testing.T) {
	srv := newTestServer(t, config.Config{LLMProvider: "offline"}, offline.New())

	res := srv.do(t, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, res.Code)
	body := decodeBody(t, res)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(3), body["products"])
	assert.NotEmpty(t, res.Header().Get(requestIDHeader))
}

func TestGenerateServesFallbackWhenProviderDisabled(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	res := srv.do(t, http.MethodPost, "/v1/content/generate", map[string]string{
		"product_id":   "1",
		"content_type": "Product Description",
		"tone":         "casual",
	})

	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	body := decodeBody(t, res)
	assert.Contains(t, body["content"], "Aqua Bottle")
	assert.Contains(t, body["content"], "Insulated, BPA-free")
	assert.NotEmpty(t, body["recommendation"])
	assert.Contains(t, body, "generation_time_seconds")

	meta, ok := body["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fallback", meta["source"])
	assert.Equal(t, "Product Description", meta["content_type"])
	assert.Equal(t, "English", meta["language"])
	assert.Contains(t, meta["error"], "provider_disabled")
}

func TestGenerateReturnsModelText(t *testing.T) {
	srv := newTestServer(t, config.Config{}, textGeneratorStub{text: "Great bottle!"})

	res := srv.do(t, http.MethodPost, "/v1/content/generate", map[string]any{
		"product": map[string]string{
			"id":              "inline",
			"name":            "Aqua Bottle",
			"category":        "Drinkware",
			"features":        "Insulated",
			"target_audience": "Athletes",
		},
		"content_type": "email",
		"tone":         "Luxury",
		"language":     "French",
	})

	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	body := decodeBody(t, res)
	assert.Equal(t, "Great bottle!", body["content"])
	meta := body["metadata"].(map[string]any)
	assert.Equal(t, "ai", meta["source"])
	assert.NotContains(t, meta, "error")
}

func TestGenerateRejectsProductWithMissingField(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	res := srv.do(t, http.MethodPost, "/v1/content/generate", map[string]any{
		"product": map[string]string{
			"id":              "inline",
			"name":            "Aqua Bottle",
			"features":        "Insulated",
			"target_audience": "Athletes",
		},
		"content_type": "Social Post",
		"tone":         "Playful",
	})

	require.Equal(t, http.StatusBadRequest, res.Code)
	body := decodeBody(t, res)
	assert.Equal(t, domain.FieldCategory, body["field"])
}

func TestGenerateAcceptsBlankProductAttribute(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	res := srv.do(t, http.MethodPost, "/v1/content/generate", map[string]string{
		"product_id":   "3",
		"content_type": "Social Post",
		"tone":         "Playful",
	})

	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	body := decodeBody(t, res)
	assert.Contains(t, body["content"], "Plain Tote")
}

func TestGenerateValidatesRequest(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	cases := []struct {
		name string
		body map[string]string
		code int
	}{
		{"unknown product", map[string]string{"product_id": "404", "content_type": "Email", "tone": "Casual"}, http.StatusNotFound},
		{"unknown tone", map[string]string{"product_id": "1", "content_type": "Email", "tone": "Sarcastic"}, http.StatusBadRequest},
		{"unknown language", map[string]string{"product_id": "1", "content_type": "Email", "tone": "Casual", "language": "German"}, http.StatusBadRequest},
		{"no product", map[string]string{"content_type": "Email", "tone": "Casual"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := srv.do(t, http.MethodPost, "/v1/content/generate", tc.body)
			assert.Equal(t, tc.code, res.Code, res.Body.String())
			assert.NotEmpty(t, decodeBody(t, res)["error"])
		})
	}
}

func TestGenerateRejectsMalformedJSON(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	req := httptest.NewRequest(http.MethodPost, "/v1/content/generate", strings.NewReader("{"))
	res := httptest.NewRecorder()
	srv.handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	res := srv.do(t, http.MethodGet, "/v1/content/generate", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, res.Code)
	assert.Equal(t, http.MethodPost, res.Header().Get("Allow"))
}

func TestProductsEndpoints(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	res := srv.do(t, http.MethodGet, "/v1/products?category=skincare", nil)
	require.Equal(t, http.StatusOK, res.Code)
	products := decodeBody(t, res)["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "Glow Serum", products[0].(map[string]any)["name"])

	res = srv.do(t, http.MethodGet, "/v1/products/1", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Aqua Bottle", decodeBody(t, res)["name"])

	res = srv.do(t, http.MethodGet, "/v1/products/999", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestExportWritesLiteralContent(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	res := srv.do(t, http.MethodPost, "/v1/content/export", map[string]string{
		"content":  "hello",
		"filename": "copy.txt",
	})

	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	path := decodeBody(t, res)["path"].(string)
	assert.Equal(t, filepath.Join(srv.exportDir, "copy.txt"), path)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))
}

func TestExportRecreatesMissingExportDir(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())
	require.NoError(t, os.RemoveAll(srv.exportDir))

	res := srv.do(t, http.MethodPost, "/v1/content/export", map[string]string{"content": "hello"})

	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	path := decodeBody(t, res)["path"].(string)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "brandboost_content_"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))
}

func TestExportRejectsNestedFilename(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	res := srv.do(t, http.MethodPost, "/v1/content/export", map[string]string{
		"content":  "hello",
		"filename": "../escape.txt",
	})

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestReadExportReturnsStoredContent(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	res := srv.do(t, http.MethodPost, "/v1/content/export", map[string]string{
		"content":  "round trip",
		"filename": "trip.txt",
	})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	res = srv.do(t, http.MethodGet, "/v1/content/exports/trip.txt", nil)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	body := decodeBody(t, res)
	assert.Equal(t, "trip.txt", body["filename"])
	assert.Equal(t, "round trip", body["content"])

	res = srv.do(t, http.MethodGet, "/v1/content/exports/missing.txt", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestStatsAndAnalyticsReflectGenerations(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())

	res := srv.do(t, http.MethodPost, "/v1/content/generate", map[string]string{
		"product_id": "2", "content_type": "Email", "tone": "Professional",
	})
	require.Equal(t, http.StatusOK, res.Code)

	stats := decodeBody(t, srv.do(t, http.MethodGet, "/v1/stats", nil))
	kpis := stats["kpis"].(map[string]any)
	assert.Equal(t, float64(1), kpis["generations_count"])
	assert.Equal(t, 0.5, kpis["time_saved_hours"])
	assert.Equal(t, float64(12), kpis["cost_saved"])

	overview := decodeBody(t, srv.do(t, http.MethodGet, "/v1/analytics/overview", nil))
	roi := overview["roi"].(map[string]any)
	assert.InDelta(t, 22.42, roi["net_savings"], 1e-9)

	points := decodeBody(t, srv.do(t, http.MethodGet, "/v1/analytics/time-savings", nil))["points"].([]any)
	assert.Len(t, points, 7)

	categories := decodeBody(t, srv.do(t, http.MethodGet, "/v1/analytics/categories", nil))["categories"].([]any)
	assert.Len(t, categories, 3)

	tones := decodeBody(t, srv.do(t, http.MethodGet, "/v1/analytics/tone-effectiveness", nil))["tones"].([]any)
	assert.Len(t, tones, 6)

	insights := decodeBody(t, srv.do(t, http.MethodGet, "/v1/analytics/insights", nil))
	assert.NotEmpty(t, insights["insights"])

	about := decodeBody(t, srv.do(t, http.MethodGet, "/v1/about", nil))
	assert.Equal(t, "BrandBoost", about["name"])
}

func TestMetricsEndpointExposesRequestCounters(t *testing.T) {
	srv := newTestServer(t, config.Config{}, offline.New())
	srv.do(t, http.MethodGet, "/v1/products", nil)

	res := srv.do(t, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "brandboost_http_requests_total")
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	srv := newTestServer(t, config.Config{APIRateLimitRPS: 1, APIRateLimitBurst: 1}, offline.New())

	res1 := srv.do(t, http.MethodGet, "/v1/products", nil)
	require.Equal(t, http.StatusOK, res1.Code)

	res2 := srv.do(t, http.MethodGet, "/v1/products", nil)
	require.Equal(t, http.StatusTooManyRequests, res2.Code)
	assert.NotEmpty(t, res2.Header().Get("Retry-After"))

	health := srv.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, health.Code, "health checks bypass traffic control")
}

func TestBackpressureMiddlewareReturns503WhenSaturated(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan int, 1)

	base := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-release
		w.WriteHeader(http.StatusNoContent)
	})
	rejected := 0
	handler := backpressureMiddleware(base, 1, 20*time.Millisecond, func() { rejected++ })

	go func() {
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
		done <- res.Code
	}()

	<-started

	res2 := httptest.NewRecorder()
	handler.ServeHTTP(res2, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
	require.Equal(t, http.StatusServiceUnavailable, res2.Code)
	assert.NotEmpty(t, decodeBody(t, res2)["error"])
	assert.Equal(t, 1, rejected)

	close(release)

	select {
	case code := <-done:
		assert.Equal(t, http.StatusNoContent, code)
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for first request completion")
	}
}

func TestMapErrorToHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.WrapError(domain.ErrInvalidInput, "op", io.EOF), http.StatusBadRequest},
		{&domain.MissingFieldError{Field: domain.FieldName}, http.StatusBadRequest},
		{domain.WrapError(domain.ErrProductNotFound, "op", io.EOF), http.StatusNotFound},
		{domain.WrapError(domain.ErrExportNotFound, "op", io.EOF), http.StatusNotFound},
		{domain.WrapError(domain.ErrExportWrite, "op", io.EOF), http.StatusInternalServerError},
		{domain.WrapError(domain.ErrTemporary, "op", io.EOF), http.StatusServiceUnavailable},
		{io.EOF, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mapErrorToHTTPStatus(tc.err), tc.err.Error())
	}
}
