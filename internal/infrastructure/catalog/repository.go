package catalog

import (
	"fmt"
	"log/slog"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

// Repository is an in-memory, read-only view of a loaded catalog.
type Repository struct {
	products []domain.Product
	byID     map[string]int
}

func NewRepository(products []domain.Product) *Repository {
	repo := &Repository{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, dup := repo.byID[p.ID]; dup {
			slog.Warn("catalog_duplicate_product", "product_id", p.ID)
			continue
		}
		repo.byID[p.ID] = len(repo.products)
		repo.products = append(repo.products, p)
	}
	return repo
}

// Open loads path and fails when the catalog has no products.
func Open(path string) (*Repository, error) {
	products, err := Load(path)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog %s has no products", path)
	}
	slog.Info("catalog_loaded", "path", path, "products", len(products))
	return NewRepository(products), nil
}

func (r *Repository) List() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *Repository) GetByID(id string) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, domain.WrapError(domain.ErrProductNotFound, "get product", fmt.Errorf("id %q", id))
	}
	return r.products[i], nil
}

// Categories counts products per category in first-seen order.
func (r *Repository) Categories() []domain.CategoryCount {
	var out []domain.CategoryCount
	pos := make(map[string]int)
	for _, p := range r.products {
		i, ok := pos[p.Category]
		if !ok {
			pos[p.Category] = len(out)
			out = append(out, domain.CategoryCount{Category: p.Category, Count: 1})
			continue
		}
		out[i].Count++
	}
	return out
}
