package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database configured by the environment. With no
// MySQL settings present it falls back to a local sqlite file, which
// keeps development and small deployments free of external services.
func InitDB() (*gorm.DB, error) {
	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			host,
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "qrmenu"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := getEnv("SQLITE_PATH", "qrmenu.db")
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// BaseURL is the public address used when building absolute URLs
// (upload results, QR payloads).
func BaseURL() string {
	return getEnv("BASE_URL", "http://localhost:8080")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
