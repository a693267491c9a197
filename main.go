package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/brianmaleek/alx-listing-app-deployed/config"
	"github.com/brianmaleek/alx-listing-app-deployed/controllers"
	"github.com/brianmaleek/alx-listing-app-deployed/repositories"
	"github.com/brianmaleek/alx-listing-app-deployed/routes"
	"github.com/brianmaleek/alx-listing-app-deployed/services"
	"github.com/brianmaleek/alx-listing-app-deployed/utils"
)

func main() {
	// .env is optional
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(os.Stderr, cfg.LogLevel)
	if envErr != nil {
		level.Debug(logger).Log("msg", ".env not loaded; using process environment", "err", envErr)
	}
	if cfg.APIBaseURL == "" {
		level.Warn(logger).Log("msg", "API_BASE_URL is not set; backend requests will fail")
	}

	if err := utils.InitValidator(); err != nil {
		level.Error(logger).Log("msg", "failed to register validators", "err", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	stores, err := openStores(cfg, logger)
	if err != nil {
		level.Error(logger).Log("msg", "failed to open store", "store", cfg.Store, "err", err)
		os.Exit(1)
	}
	defer stores.close()
	level.Info(logger).Log("msg", "mock api store ready", "store", cfg.Store)

	client := services.NewAPIClient(cfg.APIBaseURL, cfg.RequestTimeout, services.NewBackendMetrics(reg))

	gin.SetMode(gin.ReleaseMode)
	router, err := routes.SetupRouter(cfg, logger, reg, routes.Controllers{
		Pages:      controllers.NewPageController(client, logger),
		Properties: controllers.NewPropertyController(services.NewPropertyService(stores.properties), logger),
		Reviews:    controllers.NewReviewController(services.NewReviewService(stores.reviews), logger),
	})
	if err != nil {
		level.Error(logger).Log("msg", "failed to build router", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g := &run.Group{}
	g.Add(func() error {
		level.Info(logger).Log("msg", "starting HTTP server", "addr", srv.Addr, "api_base_url", client.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}, func(error) {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			level.Error(logger).Log("msg", "server forced to shutdown", "err", err)
		}
	})
	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))

	if err := g.Run(); err != nil {
		var sig run.SignalError
		if !errors.As(err, &sig) {
			level.Error(logger).Log("err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "shutdown signal received", "signal", sig.Signal)
	}
	level.Info(logger).Log("msg", "server stopped gracefully")
}

type storeSet struct {
	reviews    repositories.ReviewRepository
	properties repositories.PropertyRepository
	close      func()
}

// openStores builds the repositories selected by cfg.Store. The database stores are
// migrated and, when asked, seeded with the same tables the memory store serves.
func openStores(cfg *config.Config, logger log.Logger) (*storeSet, error) {
	switch cfg.Store {
	case config.StoreMySQL:
		db, err := config.ConnectDatabase(cfg.Database, utils.PrintfLogger{Logger: log.With(logger, "component", "gorm")})
		if err != nil {
			return nil, err
		}
		if err := repositories.Migrate(db); err != nil {
			return nil, err
		}
		if cfg.Database.Seed {
			if err := repositories.Seed(context.Background(), db, repositories.SeedProperties(), repositories.SeedReviews()); err != nil {
				return nil, err
			}
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return &storeSet{
			reviews:    repositories.NewMySQLReviewRepository(db),
			properties: repositories.NewMySQLPropertyRepository(db),
			close:      closeDB,
		}, nil

	case config.StoreMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		client, err := config.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		if cfg.Database.Seed {
			if err := repositories.SeedMongo(ctx, db, repositories.SeedProperties(), repositories.SeedReviews()); err != nil {
				return nil, err
			}
		}
		return &storeSet{
			reviews:    repositories.NewMongoReviewRepository(db),
			properties: repositories.NewMongoPropertyRepository(db),
			close:      func() { _ = client.Disconnect(context.Background()) },
		}, nil

	default:
		return &storeSet{
			reviews:    repositories.NewMemoryReviewRepository(repositories.SeedReviews()),
			properties: repositories.NewMemoryPropertyRepository(repositories.SeedProperties()),
			close:      func() {},
		}, nil
	}
}
