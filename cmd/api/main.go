package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostelvend-api/internal/cache"
	"hostelvend-api/internal/config"
	"hostelvend-api/internal/handler"
	"hostelvend-api/internal/router"
	"hostelvend-api/internal/service"
	"hostelvend-api/internal/store"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()
	if cfg.App.IsDevelopment() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	log.Println("Starting HostelVend API...")
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize KV backend based on config
	var kv store.KV
	switch cfg.Store.Type {
	case "mysql":
		mysqlDB, err := sql.Open("mysql", cfg.Store.MySQLDSN())
		if err != nil {
			log.Fatalf("Failed to open MySQL: %v", err)
		}
		mysqlDB.SetMaxOpenConns(10)
		mysqlDB.SetMaxIdleConns(5)
		mysqlDB.SetConnMaxLifetime(5 * time.Minute)
		if err := mysqlDB.Ping(); err != nil {
			log.Fatalf("MySQL ping failed: %v", err)
		}
		mysqlKV, err := store.NewMySQLKV(mysqlDB)
		if err != nil {
			log.Fatalf("Failed to initialize MySQL store: %v", err)
		}
		kv = mysqlKV
		log.Println("MySQL store initialized")
	case "memory":
		kv = store.NewMemoryKV()
		log.Println("Memory store initialized (state will not survive restarts)")
	default: // sqlite
		sqliteKV, err := store.NewSQLiteKV(cfg.Store.Path)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite store: %v", err)
		}
		kv = sqliteKV
		log.Println("SQLite store initialized")
	}

	st := store.New(kv)
	defer st.Close()

	// Initialize the short-lived entry cache: Redis when reachable,
	// in-memory otherwise.
	var entryCache cache.Cache
	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Cache.RedisAddress(),
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})
	if err != nil {
		log.Printf("Warning: Redis connection failed, using memory cache: %v", err)
		entryCache = cache.NewMemoryCache()
	} else {
		entryCache = redisCache
	}
	defer entryCache.Close()

	// Initialize services
	catalogService := service.NewCatalogService(st)
	accountService := service.NewAccountService(st)
	orderService := service.NewOrderService(st, accountService, catalogService)
	verifyService := service.NewVerifyService(entryCache, cfg.Verify.CodeTTL)
	sessionService := service.NewSessionService(entryCache, cfg.App.SessionTTL)

	// Initialize handlers
	healthHandler := handler.New(cfg.App.Version, st)
	authHandler := handler.NewAuthHandler(accountService, sessionService, cfg.App.AdminID, cfg.App.AdminPass)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService, verifyService, cfg.Verify.Required)
	verifyHandler := handler.NewVerifyHandler(verifyService)
	adminHandler := handler.NewAdminHandler(cfg.Store.Type)

	// Create router
	r := router.New(router.Config{
		Handler:        healthHandler,
		AuthHandler:    authHandler,
		CatalogHandler: catalogHandler,
		OrderHandler:   orderHandler,
		VerifyHandler:  verifyHandler,
		AdminHandler:   adminHandler,
		Sessions:       sessionService,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
