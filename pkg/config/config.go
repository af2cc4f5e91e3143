package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort    int
	StaticDir   string
	CatalogFile string

	Storage Storage
}

// Storage selects where the simulated browser keeps its web storage.
type Storage struct {
	Driver     string // memory, sqlite or postgres
	Origin     string
	SQLitePath string

	PostgresHost string
	PostgresPort int
	PostgresUser string
	PostgresPass string
	PostgresDB   string
}

func Load() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		StaticDir:   getEnv("STATIC_DIR", "web"),
		CatalogFile: getEnv("CATALOG_FILE", "web/catalog.json"),
		Storage: Storage{
			Driver:       getEnv("STORAGE_DRIVER", "memory"),
			Origin:       getEnv("STORAGE_ORIGIN", "http://localhost:8080"),
			SQLitePath:   getEnv("SQLITE_PATH", "cart-widget.db"),
			PostgresHost: getEnv("POSTGRES_HOST", "localhost"),
			PostgresPort: getEnvInt("POSTGRES_PORT", 5432),
			PostgresUser: getEnv("POSTGRES_USER", "shopping"),
			PostgresPass: getEnv("POSTGRES_PASSWORD", "shoppingpassword"),
			PostgresDB:   getEnv("POSTGRES_DB", "shopping_db"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
