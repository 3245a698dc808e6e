package domain

import "github.com/shopspring/decimal"

// AllCategories is the catalog filter that matches every product.
const AllCategories = "All Coffee"

var Categories = []string{AllCategories, "Cappuccino", "Espresso", "Black Coffee"}

type Product struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Category    string          `db:"category" json:"category"`
	Rating      float64         `db:"rating" json:"rating"`
	ImageURL    string          `db:"image_url" json:"image_url"`
	Description string          `db:"description" json:"description"`
}

// Equal compares field by field; prices compare numerically so 4.5 == 4.50.
func (p Product) Equal(o Product) bool {
	return p.ID == o.ID && p.Name == o.Name && p.Price.Equal(o.Price) &&
		p.Category == o.Category && p.Rating == o.Rating &&
		p.ImageURL == o.ImageURL && p.Description == o.Description
}
