package repos

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	applog "coffeeshop/internal/log"
)

// OpenDB opens sqlite for file or ":memory:" DSNs and Postgres (pgx) for
// postgres:// URLs, then ensures the schema and seeds the catalog.
func OpenDB(dsn string) (*sqlx.DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver = "pgx"
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// every sqlite connection to :memory: is its own database
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	// Add the demo menu (idempotent; safe to run every start)
	if err := seedProducts(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed products: %w", err)
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS kv_store(
  store_key   TEXT PRIMARY KEY,
  store_value TEXT NOT NULL,
  updated_at  TEXT
)`,
	`CREATE TABLE IF NOT EXISTS products(
  id          TEXT PRIMARY KEY,
  name        TEXT NOT NULL,
  price       NUMERIC NOT NULL CHECK (price >= 0),
  category    TEXT NOT NULL,
  rating      REAL NOT NULL DEFAULT 0,
  image_url   TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT ''
)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
}

func ensureSchema(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ProductID derives a stable id for a seeded product so reseeding never
// duplicates rows and favorites saved against an id stay valid.
func ProductID(slug string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("coffeeshop/products/"+slug)).String()
}

type seedProduct struct {
	slug, name, price, category, desc string
	rating                            float64
}

var menu = []seedProduct{
	{"caffe-mocha", "Caffe Mocha", "4.53", "Cappuccino", "A cappuccino is an approximately 150 ml beverage with espresso, steamed milk and foam.", 4.8},
	{"flat-white", "Flat White", "3.53", "Cappuccino", "Espresso with a thin layer of velvety microfoam.", 4.6},
	{"doppio", "Doppio", "3.10", "Espresso", "A double shot of espresso.", 4.5},
	{"ristretto", "Ristretto", "2.95", "Espresso", "A short shot pulled with less water.", 4.4},
	{"americano", "Americano", "3.25", "Black Coffee", "Espresso diluted with hot water.", 4.3},
	{"cold-brew", "Cold Brew", "4.20", "Black Coffee", "Coffee steeped in cold water for twenty hours.", 4.7},
}

func seedProducts(db *sqlx.DB) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	q := tx.Rebind(`
		INSERT INTO products(id, name, price, category, rating, image_url, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`)
	for _, p := range menu {
		img := "products/" + p.slug + "/main.jpg"
		if _, err := tx.Exec(q, ProductID(p.slug), p.name, p.price, p.category, p.rating, img, p.desc); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	applog.Info(nil, "seed.menu", map[string]any{"products": len(menu)})
	return nil
}
