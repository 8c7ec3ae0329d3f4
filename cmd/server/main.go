package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"product-api/internal/auth"
	"product-api/internal/config"
	"product-api/internal/domain"
	apphttp "product-api/internal/http"
	"product-api/internal/repository/memory"
	"product-api/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("using default jwt signing secret; set PRODUCT_AUTH_JWTSECRET in production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	productRepo := memory.NewProductRepository()
	productService := service.NewProductService(productRepo)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	authService, err := service.NewAuthService(tokens, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		logger.Fatalf("setup auth: %v", err)
	}

	if err := seedCatalog(ctx, productService); err != nil {
		logger.Fatalf("seed catalog: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(apphttp.Recovery(logger))
	router.Use(apphttp.RequestLogger(logger))

	handler := apphttp.NewHandler(productService, authService, tokens, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// seedCatalog loads the starter products so the API is browsable on
// first boot.
func seedCatalog(ctx context.Context, products service.ProductService) error {
	seeds := []domain.ProductInput{
		{
			Name:        "Laptop",
			Price:       1200,
			Description: strPtr("High-performance laptop with 16GB RAM"),
			Category:    strPtr("electronics"),
			InStock:     boolPtr(true),
		},
		{
			Name:        "Smartphone",
			Price:       800,
			Description: strPtr("Latest model with 128GB storage"),
			Category:    strPtr("electronics"),
			InStock:     boolPtr(true),
		},
		{
			Name:        "Coffee Maker",
			Price:       50,
			Description: strPtr("Programmable coffee maker with timer"),
			Category:    strPtr("kitchen"),
			InStock:     boolPtr(false),
		},
	}

	for _, seed := range seeds {
		if _, err := products.CreateProduct(ctx, seed); err != nil {
			return err
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
