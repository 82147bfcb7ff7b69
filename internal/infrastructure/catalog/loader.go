package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

const FieldProductID = "ProductID"

var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Load reads a product catalog, choosing the decoder by file extension. On
// any failure it returns an empty slice together with the error.
func Load(path string) ([]domain.Product, error) {
	products, err := load(path)
	if err != nil {
		return []domain.Product{}, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return products, nil
}

func load(path string) ([]domain.Product, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return decodeCSV(f)
	case ".xlsx":
		return loadXLSX(path)
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return decodeYAML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func decodeCSV(r io.Reader) ([]domain.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return fromRows(rows)
}

func loadXLSX(path string) ([]domain.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return fromRows(rows)
}

// decodeYAML reads a list of products. An attribute key that is missing or
// null marks the attribute absent.
func decodeYAML(r io.Reader) ([]domain.Product, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	var products []domain.Product
	if err := yaml.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var records []map[string]any
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	for i := range products {
		if i < len(records) {
			for _, attr := range domain.Attributes() {
				if v, ok := records[i][attr.Key]; !ok || v == nil {
					products[i].Absent = append(products[i].Absent, attr.Field)
				}
			}
		}
		products[i] = trimProduct(products[i])
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// fromRows maps a header row plus records to products. Columns are matched by
// name; a missing column marks its attribute absent on every product, while a
// short record leaves the remaining attributes blank.
func fromRows(rows [][]string) ([]domain.Product, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[normalizeHeader(name)] = i
	}
	for _, required := range []string{FieldProductID, domain.FieldName} {
		if _, ok := index[normalizeHeader(required)]; !ok {
			return nil, fmt.Errorf("missing %q column", required)
		}
	}

	var absent []string
	for _, attr := range domain.Attributes() {
		if _, ok := index[normalizeHeader(attr.Field)]; !ok {
			absent = append(absent, attr.Field)
		}
	}

	cell := func(row []string, column string) string {
		i, ok := index[normalizeHeader(column)]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	products := make([]domain.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		products = append(products, trimProduct(domain.Product{
			ID:             cell(row, FieldProductID),
			Name:           cell(row, domain.FieldName),
			Category:       cell(row, domain.FieldCategory),
			Features:       cell(row, domain.FieldFeatures),
			TargetAudience: cell(row, domain.FieldTargetAudience),
			Absent:         slices.Clone(absent),
		}))
	}
	return products, nil
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func trimProduct(p domain.Product) domain.Product {
	return domain.Product{
		ID:             strings.TrimSpace(p.ID),
		Name:           strings.TrimSpace(p.Name),
		Category:       strings.TrimSpace(p.Category),
		Features:       strings.TrimSpace(p.Features),
		TargetAudience: strings.TrimSpace(p.TargetAudience),
		Absent:         p.Absent,
	}
}
