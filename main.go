package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heirloom/cache"
	"heirloom/config"
	"heirloom/database"
	listingRepo "heirloom/database/repository/listing"
	"heirloom/handlers"
	"heirloom/middleware"
	"heirloom/routes"
	"heirloom/services/saved"
	"heirloom/services/search"
	"heirloom/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	utils.InitSavedSetStore()

	// Listings provider: the seeded in-memory mock by default, MongoDB in a
	// real deployment.
	var repo listingRepo.ListingRepository
	var mongoClient *mongo.Client
	if cfg.UseMockListings {
		repo = listingRepo.NewMockListingRepo(
			time.Duration(cfg.MockSearchDelay)*time.Millisecond,
			time.Duration(cfg.MockDetailDelay)*time.Millisecond,
		)
		logger.Sugar().Info("main: using mock listings provider")
	} else {
		database.InitDB()
		mongoClient = database.MongoClient

		mongoRepo := listingRepo.NewMongoListingRepo(cfg.DatabaseName)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure listing indexes: %v", err)
		}
		if err := mongoRepo.SeedIfEmpty(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to seed listings: %v", err)
		}
		cancel()
		repo = mongoRepo
	}

	// Result caches: one for listing lookups, one for geocoding.
	listingCache := cache.New(cfg.ListingCacheSize, time.Duration(cfg.ListingCacheTTL)*time.Second)
	geocodeCache := cache.New(cfg.GeocodeCacheSize, time.Duration(cfg.GeocodeCacheTTL)*time.Second)

	// services.
	searchService, err := search.NewDefaultSearchService(repo, listingCache, geocodeCache, logger, cfg.DefaultRadiusMiles)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize search service: %v", err)
	}
	savedService, err := saved.NewDefaultSavedSetService(
		saved.NewRedisSlotStore(utils.GetSavedSetClient()),
		logger,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize saved-set service: %v", err)
	}

	salesHandler := handlers.NewSalesHandler(searchService)
	geocodeHandler := handlers.NewGeocodeHandler(searchService)
	savedHandler := handlers.NewSavedHandler(savedService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SearchSalesHandler:    salesHandler.SearchSalesHandler,
		SaleDetailsHandler:    salesHandler.SaleDetailsHandler,
		SearchStateHandler:    salesHandler.SearchStateHandler,
		GeocodeAddressHandler: geocodeHandler.GeocodeAddressHandler,
		ListSavedHandler:      savedHandler.ListSavedHandler,
		ToggleSavedHandler:    savedHandler.ToggleSavedHandler,
		RemoveSavedHandler:    savedHandler.RemoveSavedHandler,
		ContainsSavedHandler:  savedHandler.ContainsSavedHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSavedSetClient(), mongoClient)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
