package handlers

import (
	"context"

	"coffeeshop/internal/config"
	"coffeeshop/internal/domain"
	"coffeeshop/internal/repos"
	"coffeeshop/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Writer    *repos.AsyncWriter
	Catalog   *services.CatalogService
	Cart      *services.CartService
	Favorites *services.FavoritesService
	Locations *services.LocationService

	ProductHandler   *ProductHandler
	CartHandler      *CartHandler
	FavoritesHandler *FavoritesHandler
	LocationHandler  *LocationHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	kv := repos.NewSQLStore(db)
	writer := repos.NewAsyncWriter()

	catalogSvc := services.NewCatalogService(repos.NewProductRepo(db))
	cartSvc := services.NewCartService(domain.DeliveryFee{Original: cfg.DeliveryFee, Discounted: cfg.DeliveryFeeDiscounted})
	favSvc := services.NewFavoritesService(repos.NewFavoritesRepo(kv), writer)
	locSvc := services.NewLocationService(repos.NewLocationRepo(kv), writer)

	return &Deps{
		Writer:    writer,
		Catalog:   catalogSvc,
		Cart:      cartSvc,
		Favorites: favSvc,
		Locations: locSvc,

		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc, Catalog: catalogSvc, Locations: locSvc},
		FavoritesHandler: &FavoritesHandler{Favorites: favSvc, Catalog: catalogSvc},
		LocationHandler:  &LocationHandler{Locations: locSvc},
	}
}

// Start loads the stores independently; neither waits for the other and they
// may finish in any order.
func (d *Deps) Start(ctx context.Context) {
	go d.Favorites.Load(ctx)
	go d.Locations.Load(ctx)
	go func() { _ = d.Catalog.Refresh(ctx) }()
}
