package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"coffeeshop/internal/domain"
	applog "coffeeshop/internal/log"
)

// ProductSource returns the complete current menu.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type CatalogState struct {
	Loading          bool     `json:"loading"`
	Err              string   `json:"error,omitempty"`
	SelectedCategory string   `json:"selectedCategory"`
	Categories       []string `json:"categories"`
}

// CatalogService caches the menu in memory. Each successful Refresh replaces
// the whole list; a failed one keeps the old list and records Err until the
// caller retries.
type CatalogService struct {
	Source ProductSource

	mu       sync.Mutex
	products []domain.Product
	selected string
	loading  bool
	err      string
}

func NewCatalogService(src ProductSource) *CatalogService {
	return &CatalogService{Source: src, products: []domain.Product{}, selected: domain.AllCategories}
}

func (s *CatalogService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	products, err := s.Source.ListProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = MsgFetchProducts
		applog.Error(nil, "catalog.fetch.fail", err, nil)
		return fmt.Errorf("fetch products: %w", err)
	}
	s.products = products
	return nil
}

func (s *CatalogService) SelectCategory(name string) {
	s.mu.Lock()
	s.selected = name
	s.mu.Unlock()
}

// Filtered returns the products of the selected category.
func (s *CatalogService) Filtered() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byCategoryLocked(s.selected)
}

// ByCategory filters without touching the selection. Categories compare
// case-insensitively; AllCategories returns everything.
func (s *CatalogService) ByCategory(name string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byCategoryLocked(name)
}

func (s *CatalogService) byCategoryLocked(name string) []domain.Product {
	out := []domain.Product{}
	for _, p := range s.products {
		if name == domain.AllCategories || strings.EqualFold(p.Category, name) {
			out = append(out, p)
		}
	}
	return out
}

func (s *CatalogService) Product(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.products, func(p domain.Product) bool { return p.ID == id })
	if i < 0 {
		return domain.Product{}, false
	}
	return s.products[i], true
}

func (s *CatalogService) State() CatalogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CatalogState{
		Loading:          s.loading,
		Err:              s.err,
		SelectedCategory: s.selected,
		Categories:       slices.Clone(domain.Categories),
	}
}
