// Package server boots the application: config, store driver, cache,
// storage, the HTTP stack, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dwisetyadi/warungpos/app/controllers"
	"github.com/dwisetyadi/warungpos/app/repositories"
	"github.com/dwisetyadi/warungpos/app/routes"
	"github.com/dwisetyadi/warungpos/app/services"
	"github.com/dwisetyadi/warungpos/config"
	"github.com/dwisetyadi/warungpos/pkg/cache"
	"github.com/dwisetyadi/warungpos/pkg/database"
	"github.com/dwisetyadi/warungpos/pkg/logger"
	"github.com/dwisetyadi/warungpos/pkg/metrics"
	"github.com/dwisetyadi/warungpos/pkg/middleware"
	"github.com/dwisetyadi/warungpos/pkg/reqid"
	"github.com/dwisetyadi/warungpos/pkg/response"
	"github.com/dwisetyadi/warungpos/pkg/router"
	"github.com/dwisetyadi/warungpos/pkg/storage"
)

// Start runs the HTTP server until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	var (
		client *mongo.Client
		db     *mongo.Database
	)
	if config.StoreDriver() == "mongo" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		client, db, err = database.Connect(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = database.Disconnect(client) }()
	}

	var mongoLog *logger.MongoHandler
	if config.LogMongo() && db != nil {
		mongoLog = logger.NewMongoHandler(db.Collection("logs"))
		logger.UseHandler(logger.NewMultiHandler(logger.L.Handler(), mongoLog))
		defer mongoLog.Close()
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, listings served uncached", "error", err)
	}
	storage.Connect()

	var (
		itemRepo     repositories.ItemRepository
		categoryRepo repositories.CategoryRepository
		receiptRepo  repositories.ReceiptRepository
	)
	if db != nil {
		itemRepo = repositories.NewMongoItemRepository(db)
		categoryRepo = repositories.NewMongoCategoryRepository(db)
		receiptRepo = repositories.NewMongoReceiptRepository(db)
	} else {
		itemRepo = repositories.NewMemoryItemRepository()
		categoryRepo = repositories.NewMemoryCategoryRepository()
		receiptRepo = repositories.NewMemoryReceiptRepository()
	}

	categorySvc := services.NewCategoryService(categoryRepo, itemRepo)
	itemSvc := services.NewItemService(itemRepo, categorySvc)
	receiptSvc := services.NewReceiptService(receiptRepo)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(120, time.Minute),
	)

	routes.RegisterAPI(r, routes.Controllers{
		Items:      controllers.NewItemController(itemSvc),
		Categories: controllers.NewCategoryController(categorySvc),
		Receipts:   controllers.NewReceiptController(receiptSvc),
		Auth:       controllers.NewAuthController(services.NewAuthService()),
	})
	r.Get("/healthz", "healthz", healthz(client))

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", config.AppEnv(), "store", config.StoreDriver())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
		return err
	}
	return nil
}

// healthz reports liveness, and store reachability when running on Mongo.
func healthz(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := client.Ping(ctx, nil); err != nil {
				slog.ErrorContext(r.Context(), "health ping failed", "error", err)
				response.Error(w, http.StatusServiceUnavailable, "store unreachable")
				return
			}
		}
		response.Message(w, "ok")
	}
}
