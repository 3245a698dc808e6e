package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env                   string
	Port                  string
	DBDSN                 string
	LogFile               string
	LogLevel              string
	RateLimit             int
	DeliveryFee           decimal.Decimal
	DeliveryFeeDiscounted decimal.Decimal
}

// Load reads the environment, after an optional .env outside production.
func Load() Config {
	env := os.Getenv("ENV")
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("[config] no .env file loaded: %v", err)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "coffeeshop.db"
	} // sqlite file in project root
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	cfg := Config{
		Env:                   env,
		Port:                  port,
		DBDSN:                 dsn,
		LogFile:               os.Getenv("LOG_FILE"),
		LogLevel:              logLevel,
		RateLimit:             rateLimit(),
		DeliveryFee:           money("DELIVERY_FEE", "2.00"),
		DeliveryFeeDiscounted: money("DELIVERY_FEE_DISCOUNTED", "1.00"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s LOG_LEVEL=%s DELIVERY_FEE=%s/%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.LogLevel, cfg.DeliveryFee.StringFixed(2), cfg.DeliveryFeeDiscounted.StringFixed(2))
	return cfg
}

func money(key, def string) decimal.Decimal {
	raw := os.Getenv(key)
	if raw != "" {
		d, err := decimal.NewFromString(raw)
		if err == nil && !d.IsNegative() {
			return d
		}
		log.Printf("[config] ignoring invalid %s=%q", key, raw)
	}
	return decimal.RequireFromString(def)
}

// rateLimit is requests per minute per IP; 0 turns the global limiter off.
func rateLimit() int {
	raw := os.Getenv("RATE_LIMIT")
	if raw == "" {
		return 60
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("[config] ignoring invalid RATE_LIMIT=%q", raw)
		return 60
	}
	return n
}
