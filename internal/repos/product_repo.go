package repos

import (
	"context"

	"coffeeshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// ListProducts returns the whole menu; there is no paging.
func (r *ProductRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.SelectContext(ctx, &out, `
  SELECT id, name, price, category, rating, image_url, description
  FROM products
  ORDER BY category, name
`)
	return out, err
}
