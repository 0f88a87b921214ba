package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/config"
	"github.com/iliyamo/residence-hall-booking/internal/database"
	"github.com/iliyamo/residence-hall-booking/internal/directory"
	"github.com/iliyamo/residence-hall-booking/internal/handler"
	"github.com/iliyamo/residence-hall-booking/internal/middleware"
	"github.com/iliyamo/residence-hall-booking/internal/queue"
	"github.com/iliyamo/residence-hall-booking/internal/repository"
	"github.com/iliyamo/residence-hall-booking/internal/router"
)

func main() {
	// Populate the environment from .env in development; a missing file is
	// fine, deployments set real variables.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: with no client both rate limiting and response
	// caching quietly turn off.
	rdb := config.NewRedisClient()

	facilities := repository.NewFacilityRepo(db)
	bookings := repository.NewBookingRepo(db)
	events := repository.NewEventRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	dir := directory.NewStore(db)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	facilityHandler := handler.NewFacilityHandler(facilities, bookings)
	bookingHandler := handler.NewBookingHandler(bookings, facilities)
	eventHandler := handler.NewEventHandler(events, bookings)
	profileHandler := handler.NewProfileHandler(cfg, dir)

	e := echo.New()
	e.HideBanner = true

	if rdb != nil {
		if rl := config.LoadRateLimitConfig(); rl.Enabled {
			e.Use(middleware.NewTokenBucket(rl, rdb))
		}
	}
	var cache echo.MiddlewareFunc
	if rdb != nil {
		if cc := config.LoadCacheConfig(); cc.Enabled {
			cache = middleware.NewRedisCache(cc, rdb)
		}
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler)
	router.RegisterPublic(e, facilityHandler, bookingHandler, eventHandler, profileHandler, cache)
	router.RegisterProtected(e, bookingHandler, eventHandler, profileHandler, cfg.JWTSecret)

	// The booking audit consumer runs for the life of the process and
	// reconnects on its own when the broker drops.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
