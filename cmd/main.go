package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"foodcourt/internal/caching"
	"foodcourt/internal/config"
	"foodcourt/internal/handlers"
	"foodcourt/internal/jobs"
	"foodcourt/internal/repositories"
	"foodcourt/internal/services"
	"foodcourt/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.ApplyMigrations(context.Background(), pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Create repositories
	userRepo := repositories.NewUserRepo(pool)
	restaurantRepo := repositories.NewRestaurantRepo(pool)
	foodRepo := repositories.NewFoodRepo(pool)
	likeRepo := repositories.NewLikeRepo(pool)
	ratingRepo := repositories.NewRatingRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Create media service
	mediaSvc, err := services.NewMediaService(
		cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL, cfg.Minio.Bucket,
		restaurantRepo, foodRepo,
	)
	if err != nil {
		log.Fatalf("Failed to initialize media service: %v", err)
	}
	if err := mediaSvc.EnsureBucket(context.Background()); err != nil {
		log.Printf("WARN: could not ensure media bucket: %v", err)
	}

	// Create services
	likeSvc := services.NewLikeService(likeRepo, userRepo, restaurantRepo, cacheSvc)
	ratingSvc := services.NewRatingService(ratingRepo, userRepo, restaurantRepo, cacheSvc)
	orderSvc := services.NewOrderService(orderRepo, userRepo)
	catalogSvc := services.NewCatalogService(restaurantRepo, foodRepo, cacheSvc)

	// Create handlers
	likeHandlers := handlers.NewLikeHandlers(likeSvc)
	ratingHandlers := handlers.NewRatingHandlers(ratingSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	restaurantHandlers := handlers.NewRestaurantHandlers(catalogSvc, mediaSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Background stats refresher
	refresher, err := jobs.NewStatsRefresher(restaurantRepo, cacheSvc, cfg.StatsRefreshInterval)
	if err != nil {
		log.Fatalf("Failed to create stats refresher: %v", err)
	}
	refresher.Start()
	defer func() {
		if err := refresher.Stop(); err != nil {
			log.Printf("Failed to stop stats refresher: %v", err)
		}
	}()

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	v1 := e.Group("/v1")

	// Like routes
	v1.POST("/likes", likeHandlers.LikeRestaurant)
	v1.DELETE("/likes/:resId", likeHandlers.UnlikeRestaurant)
	v1.GET("/likes/restaurant/:resId", likeHandlers.LikesByRestaurant)
	v1.GET("/likes/user/:userId", likeHandlers.LikesByUser)

	// Rating routes
	v1.POST("/ratings", ratingHandlers.RateRestaurant)
	v1.GET("/ratings/restaurant/:resId", ratingHandlers.RatingsByRestaurant)
	v1.GET("/ratings/user/:userId", ratingHandlers.RatingsByUser)

	// Order routes
	v1.POST("/orders", orderHandlers.PlaceOrder)
	v1.GET("/orders/user/:userId", orderHandlers.OrdersByUser)

	// Catalog routes
	v1.GET("/restaurants", restaurantHandlers.ListRestaurants)
	v1.GET("/restaurants/:resId", restaurantHandlers.GetRestaurant)
	v1.GET("/restaurants/:resId/menu", restaurantHandlers.Menu)
	v1.GET("/restaurants/:resId/stats", restaurantHandlers.Stats)
	v1.PUT("/restaurants/:resId/image", restaurantHandlers.UploadRestaurantImage)
	v1.PUT("/foods/:foodId/image", restaurantHandlers.UploadFoodImage)

	log.Printf("foodcourt server starting on port %d", cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
