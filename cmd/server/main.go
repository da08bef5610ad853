package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/Omer-KISAKOL/site-builder/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Omer-KISAKOL/site-builder/internal/auth"
	"github.com/Omer-KISAKOL/site-builder/internal/cache"
	"github.com/Omer-KISAKOL/site-builder/internal/config"
	"github.com/Omer-KISAKOL/site-builder/internal/db"
	"github.com/Omer-KISAKOL/site-builder/internal/handler"
	"github.com/Omer-KISAKOL/site-builder/internal/model"
	"github.com/Omer-KISAKOL/site-builder/internal/repository"
	"github.com/Omer-KISAKOL/site-builder/internal/router"
	"github.com/Omer-KISAKOL/site-builder/internal/service"
)

// @title Site Builder API
// @version 1.0
// @description Multi-tenant site builder with cookie-based session authentication and an admin panel.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Site{},
		&model.SiteComponent{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Both codecs share the secret; the edge codec backs the lightweight
	// verify path, the primary codec everything else.
	codec := auth.NewJWTCodec(cfg.JWTSecret)
	edgeCodec := auth.NewEdgeCodec(cfg.JWTSecret)

	userRepo := repository.NewUserRepository(gormDB)
	siteRepo := repository.NewSiteRepository(gormDB)
	componentRepo := repository.NewComponentRepository(gormDB)

	authService := service.NewAuthService(userRepo, codec)
	userService := service.NewUserService(userRepo)
	siteService := service.NewSiteService(siteRepo, componentRepo, cacheClient)
	authz := service.NewAuthorizer(userRepo)

	authHandler := handler.NewAuthHandler(authService, edgeCodec)
	adminHandler := handler.NewAdminHandler(userService)
	siteHandler := handler.NewSiteHandler(siteService)

	e := echo.New()
	e.Use(middleware.RequestID())

	router.Register(e, codec, authz, authHandler, adminHandler, siteHandler)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := db.Close(gormDB); err != nil {
		log.Printf("db close: %v", err)
	}
}
