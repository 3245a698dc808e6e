package repos

import (
	"context"
	"encoding/json"
	"fmt"

	"coffeeshop/internal/domain"
)

const FavoritesKey = "@coffee_shop_favorites"

// FavoritesRepo stores the whole favorites list as one JSON array.
type FavoritesRepo struct{ kv KVStore }

func NewFavoritesRepo(kv KVStore) *FavoritesRepo { return &FavoritesRepo{kv: kv} }

// Load returns ok=false when nothing has been saved yet.
func (r *FavoritesRepo) Load(ctx context.Context) ([]domain.Product, bool, error) {
	raw, ok, err := r.kv.Get(ctx, FavoritesKey)
	if err != nil || !ok {
		return nil, false, err
	}
	var out []domain.Product
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false, fmt.Errorf("decode favorites: %w", err)
	}
	return out, true, nil
}

func (r *FavoritesRepo) Save(ctx context.Context, favorites []domain.Product) error {
	if favorites == nil {
		favorites = []domain.Product{}
	}
	b, err := json.Marshal(favorites)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, FavoritesKey, string(b))
}
