package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/poskit/pos-api/internal/config"
	"github.com/poskit/pos-api/internal/domain/auth"
	"github.com/poskit/pos-api/internal/domain/customer"
	"github.com/poskit/pos-api/internal/domain/inventory"
	"github.com/poskit/pos-api/internal/domain/ledger"
	"github.com/poskit/pos-api/internal/domain/product"
	"github.com/poskit/pos-api/internal/domain/receipt"
	"github.com/poskit/pos-api/internal/domain/report"
	"github.com/poskit/pos-api/internal/domain/sale"
	"github.com/poskit/pos-api/internal/domain/user"
	"github.com/poskit/pos-api/internal/middleware"
	"github.com/poskit/pos-api/internal/pkg/database"
	"github.com/poskit/pos-api/internal/pkg/jwt"
	"github.com/poskit/pos-api/internal/pkg/logger"
	pkgresponse "github.com/poskit/pos-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting POS API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	productRepo := product.NewRepository(db)
	customerRepo := customer.NewRepository(db)
	ledgerRepo := ledger.NewRepository(db)
	saleRepo := sale.NewRepository(db)
	inventoryRepo := inventory.NewRepository(db)
	reportRepo := report.NewRepository(db)

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService, redis)
	productService := product.NewService(productRepo)
	customerService := customer.NewService(customerRepo)
	ledgerService := ledger.NewService(ledgerRepo)
	saleService := sale.NewService(saleRepo, customerRepo, productRepo, ledgerService)
	inventoryService := inventory.NewService(inventoryRepo, productRepo)
	reportService := report.NewService(reportRepo, int64(cfg.LowStockThreshold))

	receiptRenderer, err := receipt.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse receipt template")
	}

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	productHandler := product.NewHandler(productService)
	customerHandler := customer.NewHandler(customerService, ledgerService)
	saleHandler := sale.NewHandler(saleService)
	inventoryHandler := inventory.NewHandler(inventoryService)
	reportHandler := report.NewHandler(reportService)
	receiptHandler := receipt.NewHandler(receiptRenderer, receipt.StoreInfo{
		Name:    cfg.StoreName,
		Address: cfg.StoreAddress,
		Phone:   cfg.StorePhone,
	}, cfg.Printers)

	authMiddleware := middleware.Auth(jwtService, authService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/products", productHandler.Routes(authMiddleware))
		r.Mount("/customers", customerHandler.Routes(authMiddleware))
		r.Mount("/sales", saleHandler.Routes(authMiddleware))
		r.Mount("/inventory", inventoryHandler.Routes(authMiddleware))
		r.Mount("/reports", reportHandler.Routes(authMiddleware))
		r.Mount("/print", receiptHandler.Routes(authMiddleware))
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
