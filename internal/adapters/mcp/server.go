package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/core/ports"
)

const serverName = "brandboost"

// Server exposes the content generator as MCP tools.
type Server struct {
	generator ports.ContentGenerator
	exporter  ports.ContentExporter
	catalog   ports.ProductCatalog
	version   string
}

func NewServer(generator ports.ContentGenerator, exporter ports.ContentExporter, catalog ports.ProductCatalog, version string) *Server {
	return &Server{
		generator: generator,
		exporter:  exporter,
		catalog:   catalog,
		version:   version,
	}
}

func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(serverName, s.version, server.WithToolCapabilities(false))

	srv.AddTool(mcp.NewTool("list_products",
		mcp.WithDescription("List catalog products that marketing copy can be generated for."),
		mcp.WithString("category", mcp.Description("Only return products in this category (case-insensitive).")),
	), s.listProducts)

	srv.AddTool(mcp.NewTool("generate_content",
		mcp.WithDescription("Generate marketing copy for a catalog product. Falls back to pre-written copy when the model is unavailable."),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Catalog product id.")),
		mcp.WithString("content_type", mcp.Required(), mcp.Enum(labels(domain.AllContentTypes())...)),
		mcp.WithString("tone", mcp.Required(), mcp.Enum(labels(domain.AllTones())...)),
		mcp.WithString("language", mcp.Description("Defaults to English."), mcp.Enum(labels(domain.AllLanguages())...)),
	), s.generateContent)

	srv.AddTool(mcp.NewTool("export_content",
		mcp.WithDescription("Write text to a file in the export directory and return its path."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Text to write verbatim.")),
		mcp.WithString("filename", mcp.Description("Bare file name; a timestamped name is used when omitted.")),
	), s.exportContent)

	srv.AddTool(mcp.NewTool("get_kpis",
		mcp.WithDescription("Report generations, time saved and cost saved since the server started."),
	), s.getKPIs)

	return srv
}

func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCPServer())
}

func (s *Server) listProducts(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := strings.TrimSpace(req.GetString("category", ""))
	products := s.catalog.List()
	if category != "" {
		filtered := products[:0:0]
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	return jsonResult(map[string]any{"products": products})
}

func (s *Server) generateContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	productID, err := req.RequireString("product_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	contentType, err := req.RequireString("content_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tone, err := req.RequireString("tone")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sel, err := domain.ParseSelection(contentType, tone, req.GetString("language", ""))
	if err != nil {
		return toolError(err), nil
	}
	product, err := s.catalog.GetByID(strings.TrimSpace(productID))
	if err != nil {
		return toolError(err), nil
	}

	result, err := s.generator.Generate(ctx, product, sel)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(result)
}

func (s *Server) exportContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	path, err := s.exporter.Export(ctx, text, req.GetString("filename", ""))
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(path), nil
}

func (s *Server) getKPIs(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kpis := s.generator.KPIs()
	return jsonResult(map[string]any{
		"kpis": kpis,
		"roi":  domain.ComputeROI(kpis),
	})
}

// toolError reports domain failures to the client as tool errors. Anything
// unexpected is logged as well.
func toolError(err error) *mcp.CallToolResult {
	var missing *domain.MissingFieldError
	switch {
	case errors.As(err, &missing):
		return mcp.NewToolResultError(fmt.Sprintf("product is missing %s", missing.Field))
	case domain.IsKind(err, domain.ErrInvalidInput), domain.IsKind(err, domain.ErrProductNotFound):
		return mcp.NewToolResultError(err.Error())
	default:
		slog.Error("mcp_tool_failed", "error", err)
		return mcp.NewToolResultError(err.Error())
	}
}

func jsonResult(payload any) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(raw)), nil
}

func labels[T fmt.Stringer](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}
