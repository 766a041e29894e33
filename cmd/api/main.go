package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/daroscoffee/storefront-service/config"
	carthandler "github.com/daroscoffee/storefront-service/internal/cart/handler"
	cartrepo "github.com/daroscoffee/storefront-service/internal/cart/repository"
	cartusecase "github.com/daroscoffee/storefront-service/internal/cart/usecase"
	"github.com/daroscoffee/storefront-service/internal/catalog"
	cataloghandler "github.com/daroscoffee/storefront-service/internal/catalog/handler"
	catalogrepo "github.com/daroscoffee/storefront-service/internal/catalog/repository"
	catalogusecase "github.com/daroscoffee/storefront-service/internal/catalog/usecase"
	"github.com/daroscoffee/storefront-service/internal/carousel"
	carouselhandler "github.com/daroscoffee/storefront-service/internal/carousel/handler"
	"github.com/daroscoffee/storefront-service/internal/order"
	"github.com/daroscoffee/storefront-service/internal/order/dispatch"
	orderhandler "github.com/daroscoffee/storefront-service/internal/order/handler"
	orderusecase "github.com/daroscoffee/storefront-service/internal/order/usecase"
	"github.com/daroscoffee/storefront-service/pkg/broker"
	"github.com/daroscoffee/storefront-service/pkg/cache"
	"github.com/daroscoffee/storefront-service/pkg/i18n"
	"github.com/daroscoffee/storefront-service/pkg/logger"
	"github.com/daroscoffee/storefront-service/pkg/search"
)

func main() {
	// .env is optional in containers
	_ = godotenv.Load()

	cfg := config.LoadEnv()

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	appLogger.Info("starting storefront service", zap.String("env", cfg.Server.AppEnv))

	if err := i18n.Init(); err != nil {
		appLogger.Fatal("failed to load locale bundle", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	kafkaProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer kafkaProducer.Close()

	// Search is optional: catalog browsing falls back to in-memory
	// filtering when Elasticsearch is unreachable.
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("elasticsearch unavailable, search will use in-memory fallback", zap.Error(err))
		esClient = nil
	}

	sheetsRepo, err := catalogrepo.NewSheetsRepository(ctx, &catalogrepo.Config{
		SpreadsheetID: cfg.Sheets.SpreadsheetID,
		APIKey:        cfg.Sheets.APIKey,
		ProductRange:  cfg.Sheets.ProductRange,
		DiscountRange: cfg.Sheets.DiscountRange,
		CategoryRange: cfg.Sheets.CategoryRange,
		EventRange:    cfg.Sheets.EventRange,
	}, appLogger)
	if err != nil {
		appLogger.Fatal("failed to create sheets client", zap.Error(err))
	}

	catalogUC := catalogusecase.NewCatalogUseCase(sheetsRepo, redisClient, esClient, appLogger)
	cartUC := cartusecase.NewCartUseCase(cartrepo.NewRedisRepository(redisClient, appLogger), catalogUC, cfg.Currency.KHRRate, appLogger)
	orderUC := orderusecase.NewOrderUseCase(
		cartUC,
		[]order.Dispatcher{
			dispatch.NewTelegramDispatcher(cfg.Order.TelegramRecipient),
			dispatch.NewKafkaDispatcher(kafkaProducer),
		},
		redisClient,
		orderusecase.Config{
			KHRRate:   cfg.Currency.KHRRate,
			OpenHour:  cfg.Order.OpenHour,
			CloseHour: cfg.Order.CloseHour,
		},
		appLogger,
	)

	banners := carousel.New(cfg.Carousel.SettleDelay, cfg.Carousel.AutoplayInterval)
	defer banners.Stop()

	if err := catalogUC.Reload(ctx); err != nil {
		appLogger.Error("initial catalog load failed, serving empty catalog until next reload", zap.Error(err))
	}
	refreshBanners(ctx, catalogUC, banners, appLogger)

	go reloadLoop(ctx, cfg.Sheets.ReloadInterval, catalogUC, banners, appLogger)

	catalogHandler := cataloghandler.NewCatalogHandler(catalogUC, appLogger)
	cartHandler := carthandler.NewCartHandler(cartUC, appLogger)
	orderHandler := orderhandler.NewOrderHandler(orderUC, appLogger)
	carouselHandler := carouselhandler.NewCarouselHandler(banners)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", catalogHandler.Browse)
			r.Post("/reload", catalogHandler.Reload)
			r.Get("/categories", catalogHandler.Categories)
			r.Get("/events", catalogHandler.Events)
			r.Get("/hot-deals", catalogHandler.HotDeals)
		})

		r.Route("/carts/{cartID}", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddLine)
			r.Patch("/items/{lineID}", cartHandler.UpdateLine)
			r.Delete("/items/{lineID}", cartHandler.RemoveLine)
			r.Post("/checkout", orderHandler.Checkout)
		})

		r.Route("/promotions/carousel", func(r chi.Router) {
			r.Get("/", carouselHandler.State)
			r.Post("/advance", carouselHandler.Advance)
			r.Post("/goto", carouselHandler.Goto)
		})
	})

	server := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: r,
	}

	go func() {
		appLogger.Info("http server listening", zap.String("addr", cfg.Server.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// reloadLoop refreshes the catalog snapshot from the sheet on a fixed
// interval until the context is cancelled.
func reloadLoop(ctx context.Context, interval time.Duration, catalogUC catalog.UseCase, banners *carousel.Carousel, log logger.ZapLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := catalogUC.Reload(ctx); err != nil {
				log.Error("scheduled catalog reload failed", zap.Error(err))
				continue
			}
			refreshBanners(ctx, catalogUC, banners, log)
		}
	}
}

// refreshBanners feeds the current event banners into the carousel.
func refreshBanners(ctx context.Context, catalogUC catalog.UseCase, banners *carousel.Carousel, log logger.ZapLogger) {
	events, err := catalogUC.Banners(ctx)
	if err != nil {
		log.Warn("failed to load carousel banners", zap.Error(err))
		return
	}
	banners.SetEntries(events)
}
