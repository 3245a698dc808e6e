package services

import (
	"context"
	"slices"
	"sync"

	"coffeeshop/internal/domain"
	applog "coffeeshop/internal/log"
	"coffeeshop/internal/repos"
)

// FavoritesService keeps favorites in memory and mirrors every change to the
// store in the background. Memory is updated first and never rolled back.
type FavoritesService struct {
	Repo   *repos.FavoritesRepo
	Writer *repos.AsyncWriter

	mu        sync.Mutex
	favorites []domain.Product
	loading   bool
}

func NewFavoritesService(repo *repos.FavoritesRepo, w *repos.AsyncWriter) *FavoritesService {
	return &FavoritesService{Repo: repo, Writer: w, favorites: []domain.Product{}, loading: true}
}

// Load replaces favorites with the stored list. Missing or unreadable data
// leaves the current list alone; errors are logged, not returned.
func (s *FavoritesService) Load(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	stored, ok, err := s.Repo.Load(ctx)
	if err != nil {
		applog.Error(nil, "favorites.load.fail", err, nil)
		return
	}
	if !ok {
		return
	}
	s.mu.Lock()
	s.favorites = stored
	s.mu.Unlock()
	applog.Info(nil, "favorites.load", map[string]any{"count": len(stored)})
}

func (s *FavoritesService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *FavoritesService) Add(ctx context.Context, p domain.Product) {
	s.mu.Lock()
	if s.indexOf(p.ID) >= 0 {
		s.mu.Unlock()
		return
	}
	s.favorites = append(s.favorites, p)
	snap := slices.Clone(s.favorites)
	s.mu.Unlock()
	s.persist(ctx, snap)
}

func (s *FavoritesService) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	s.favorites = slices.DeleteFunc(s.favorites, func(p domain.Product) bool { return p.ID == productID })
	snap := slices.Clone(s.favorites)
	s.mu.Unlock()
	s.persist(ctx, snap)
}

// Toggle removes a favorite. It cannot add one: only products already in the
// list are known here, so an unknown id is left alone. Reports the final state.
func (s *FavoritesService) Toggle(ctx context.Context, productID string) bool {
	if s.IsFavorite(productID) {
		s.Remove(ctx, productID)
	}
	return s.IsFavorite(productID)
}

func (s *FavoritesService) IsFavorite(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

func (s *FavoritesService) List() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.favorites) == 0 {
		return []domain.Product{}
	}
	return slices.Clone(s.favorites)
}

func (s *FavoritesService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *FavoritesService) indexOf(id string) int {
	return slices.IndexFunc(s.favorites, func(p domain.Product) bool { return p.ID == id })
}

func (s *FavoritesService) persist(ctx context.Context, snap []domain.Product) {
	s.Writer.Go(ctx, "favorites.persist", func(ctx context.Context) error {
		return s.Repo.Save(ctx, snap)
	})
}
