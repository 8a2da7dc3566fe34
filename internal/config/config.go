// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Drivers selectable via DB_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds everything resolved from the environment at startup. It is
// built once and passed explicitly into the token service, stores and router.
type Config struct {
	DBDriver    string
	MongoURL    string
	PostgresURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret   string
	Port        string
	WorkerCount int
}

var godotenvLoad = godotenv.Load

// Load reads a .env file if present, then the process environment.
func Load() (*Config, error) {
	_ = godotenvLoad()

	cfg := &Config{
		DBDriver:      os.Getenv("DB_DRIVER"),
		MongoURL:      os.Getenv("MONGO_URL"),
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          os.Getenv("PORT"),
		WorkerCount:   1,
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverMongo
	}
	switch cfg.DBDriver {
	case DriverMongo:
		if cfg.MongoURL == "" {
			return nil, fmt.Errorf("MONGO_URL is not set")
		}
	case DriverPostgres:
		if cfg.PostgresURL == "" {
			return nil, fmt.Errorf("POSTGRES_URL is not set")
		}
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is not set")
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %v", err)
		}
		cfg.RedisDB = n
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid WORKER_COUNT %q", v)
		}
		cfg.WorkerCount = n
	}
	return cfg, nil
}
