package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL   string
	MongoURL      string
	DBType        string
	Port          string
	JWTSecret     string
	UploadDir     string
	UploadStorage string
}

// LoadConfig reads configuration from .env or the environment. Startup fails
// when the signing secret or the selected store's URL is missing; there is no
// fallback secret.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		MongoURL:      os.Getenv("MONGO_URL"),
		DBType:        os.Getenv("DB_TYPE"),
		Port:          os.Getenv("PORT"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
		UploadStorage: os.Getenv("UPLOAD_STORAGE"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBType == "" {
		cfg.DBType = "mongo"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if cfg.UploadStorage == "" {
		cfg.UploadStorage = "local"
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}
	switch cfg.DBType {
	case "mongo":
		if cfg.MongoURL == "" {
			log.Fatal("MONGO_URL not set in environment")
		}
	case "postgres":
		if cfg.PostgresURL == "" {
			log.Fatal("POSTGRES_URL not set in environment")
		}
	}

	return cfg
}
