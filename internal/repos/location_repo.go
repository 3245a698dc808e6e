package repos

import (
	"context"
	"encoding/json"
	"fmt"

	"coffeeshop/internal/domain"
)

const LocationsKey = "@coffee_shop_locations"

type LocationRepo struct{ kv KVStore }

func NewLocationRepo(kv KVStore) *LocationRepo { return &LocationRepo{kv: kv} }

func (r *LocationRepo) Load(ctx context.Context) ([]domain.Location, bool, error) {
	raw, ok, err := r.kv.Get(ctx, LocationsKey)
	if err != nil || !ok {
		return nil, false, err
	}
	var out []domain.Location
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false, fmt.Errorf("decode locations: %w", err)
	}
	return out, true, nil
}

func (r *LocationRepo) Save(ctx context.Context, locations []domain.Location) error {
	if locations == nil {
		locations = []domain.Location{}
	}
	b, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, LocationsKey, string(b))
}
