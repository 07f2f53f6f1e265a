package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	feedbackapp "github.com/storefront/backend/internal/application/feedback"
	i18napp "github.com/storefront/backend/internal/application/i18n"
	identityapp "github.com/storefront/backend/internal/application/identity"
	shoppingapp "github.com/storefront/backend/internal/application/shopping"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/translation"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	bannerRepo := persistence.NewGormBannerRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderHistoryRepository(db.DB)
	commentRepo := persistence.NewGormCommentRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	bundleRepo := persistence.NewGormBundleRepository(db.DB)

	catalogTxScope := persistence.NewGormCatalogTransactionScope(db.DB)
	shoppingTxScope := persistence.NewGormShoppingTransactionScope(db.DB)

	// Translation provider and cache
	cacheFactory := cache.NewTranslationCacheFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(true),
	)
	translationCache, err := cacheFactory.CreateCache(cfg.Translation.CacheBackend)
	if err != nil {
		log.Fatal("Failed to create translation cache", zap.Error(err))
	}
	defer func() {
		if closer, ok := translationCache.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Error("Error closing translation cache", zap.Error(err))
			}
		}
	}()
	translator := translation.NewHTTPTranslator(cfg.Translation)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	translationService := i18napp.NewTranslationService(bundleRepo, translator, translationCache, cfg.Translation, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, translationService, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, catalogTxScope, translationService, log)
	bannerService := catalogapp.NewBannerService(bannerRepo, log)
	cartService := shoppingapp.NewCartService(cartRepo, productRepo, log)
	orderService := shoppingapp.NewOrderService(orderRepo, userRepo, shoppingTxScope, log)
	feedbackService := feedbackapp.NewFeedbackService(commentRepo, reviewRepo, productRepo, orderRepo, log)

	// HTTP layer
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	authMW := middleware.JWTAuth(jwtService)
	adminMW := middleware.RequireAdmin()

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewSystemHandler(db)).
		Register(handler.NewAuthHandler(authService, authMW)).
		Register(handler.NewProductHandler(productService, authMW, adminMW)).
		Register(handler.NewCategoryHandler(categoryService, authMW, adminMW)).
		Register(handler.NewBannerHandler(bannerService, authMW, adminMW)).
		Register(handler.NewCartHandler(cartService, authMW)).
		Register(handler.NewOrderHandler(orderService, authMW, adminMW)).
		Register(handler.NewFeedbackHandler(feedbackService, authMW)).
		Register(handler.NewTranslationHandler(translationService, authMW, adminMW)).
		Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}
