// File: lexify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexify/config"
	"lexify/cron"
	"lexify/database"
	clientRepo "lexify/database/repository/client"
	lawyerRepo "lexify/database/repository/lawyer"
	ledgerRepo "lexify/database/repository/ledger"
	"lexify/handlers"
	"lexify/middleware"
	"lexify/routes"
	"lexify/services/account"
	"lexify/services/feed"
	"lexify/services/ledger"
	"lexify/services/session"
	"lexify/services/socialAuth"
	"lexify/utils"
	"lexify/views"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("main: %v", err)
	}
	logger := utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	mongoClient, err := database.Connect(rootCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if err := database.RequireTransactions(rootCtx, mongoClient); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := mongoClient.Database(cfg.DatabaseName)

	sessionRedis, err := utils.NewRedisClient(rootCtx, utils.RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisSessionDB})
	if err != nil {
		logger.Sugar().Fatalf("main: session store: %v", err)
	}
	cacheRedis, err := utils.NewRedisClient(rootCtx, utils.RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisCacheDB})
	if err != nil {
		logger.Sugar().Fatalf("main: feed cache: %v", err)
	}

	// repositories.
	clients := clientRepo.NewMongoClientRepo(rootCtx, db)
	lawyers := lawyerRepo.NewMongoLawyerRepo(rootCtx, db)
	ledgerStore := ledgerRepo.NewMongoLedgerRepo(rootCtx, db)

	// services.
	accountService := &account.DefaultAccountService{
		Clients: clients,
		Lawyers: lawyers,
	}
	sessions := session.NewManager(sessionRedis, session.Options{
		Secret:     []byte(cfg.SessionSecret),
		TTL:        cfg.SessionTTL,
		CookieName: cfg.SessionCookieName,
		Secure:     cfg.SecureCookies,
	})
	oauthFlow := &socialAuth.Flow{
		Provider: socialAuth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.PublicURL),
		States:   sessionRedis,
	}

	queue := asynq.NewClient(cron.RedisOpt(cfg))
	defer queue.Close()

	ledgerService := &ledger.DefaultLedgerService{
		Repo:    ledgerStore,
		Clients: clients,
		Lawyers: lawyers,
		Cache:   feed.NewRedisFeedCache(cacheRedis, cfg.FeedCacheTTL),
		Tasks:   queue,
	}

	stopWorker, err := cron.InitLedgerWorker(cfg, ledgerService)
	if err != nil {
		logger.Sugar().Fatalf("main: ledger worker: %v", err)
	}

	health := utils.NewHealthMonitor(mongoClient, sessionRedis, cacheRedis)
	health.Start(rootCtx, 30*time.Second)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	router.Use(middleware.SessionMiddleware(sessions))
	if err := views.Load(router); err != nil {
		logger.Sugar().Fatalf("main: failed to parse templates: %v", err)
	}

	handlerBundle := &handlers.HandlerBundle{
		Auth:   handlers.NewAuthHandler(accountService, sessions, oauthFlow),
		Ledger: handlers.NewLedgerHandler(ledgerService, accountService),
		Health: &handlers.HealthHandler{Monitor: health},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, []string{cfg.PublicURL})

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stopWorker()
	stopBackground()
	_ = sessionRedis.Close()
	_ = cacheRedis.Close()
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
