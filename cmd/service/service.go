// File: cmd/service/service.go
package main

import (
	"context"
	"fmt"
	"os"

	"analytiq/internal/cache"
	"analytiq/internal/config"
	"analytiq/internal/database"
	"analytiq/internal/router"
	"analytiq/internal/service"
	"analytiq/internal/store"
	"analytiq/internal/store/mongostore"
	"analytiq/internal/store/pgstore"
	"analytiq/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "analytiq/docs" // swag generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig = config.Load
	newMongoStore = func(ctx context.Context, url string) (store.Store, error) {
		return mongostore.Connect(ctx, url)
	}
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	newRedisClient  = cache.NewRedisClient
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var st store.Store
	switch cfg.DBDriver {
	case config.DriverPostgres:
		if err := runMigrationsFn(cfg.PostgresURL); err != nil {
			return fmt.Errorf("migrations failed: %v", err)
		}
		db, err := newPgxPool(ctx, cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("postgres connection failed: %v", err)
		}
		st = pgstore.New(db)
	default:
		st, err = newMongoStore(ctx, cfg.MongoURL)
		if err != nil {
			return fmt.Errorf("mongo connection failed: %v", err)
		}
	}
	defer st.Close(context.Background())

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("redis connection failed: %v", err)
	}
	defer rdb.Close()

	tokens := service.NewTokens(cfg.JWTSecret)

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, st, rdb, tokens, wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+cfg.Port)
}
