package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the daemon configuration, loaded from the environment with an
// optional .env overlay.
type Config struct {
	Addr        string   `env:"INVOICED_ADDR" envDefault:":8080"`
	CORSOrigins []string `env:"INVOICED_CORS_ORIGINS" envDefault:"http://localhost:3000"`

	// StoreDriver selects the backing store: memory, sqlite, postgres or mongo.
	StoreDriver string `env:"INVOICED_STORE_DRIVER" envDefault:"memory"`
	SQLitePath  string `env:"INVOICED_SQLITE_PATH" envDefault:"invoiced.db"`
	PostgresDSN string `env:"INVOICED_POSTGRES_DSN"`
	MongoURI    string `env:"INVOICED_MONGO_URI"`
	MongoDB     string `env:"INVOICED_MONGO_DB" envDefault:"invoiceledger"`

	// EVMAddresses switches party validation to checksummed EVM hex
	// addresses. Off by default, which accepts any non-empty identity.
	EVMAddresses bool `env:"INVOICED_EVM_ADDRESSES" envDefault:"false"`
}

func loadConfig() (Config, error) {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
