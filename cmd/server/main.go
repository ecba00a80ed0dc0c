package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"    // .env file loader
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/spidergroupcm/renthox-car-rent-server/internal/config"
	"github.com/spidergroupcm/renthox-car-rent-server/internal/database"
	"github.com/spidergroupcm/renthox-car-rent-server/internal/handler"
	"github.com/spidergroupcm/renthox-car-rent-server/internal/middleware"
	"github.com/spidergroupcm/renthox-car-rent-server/internal/queue"
	"github.com/spidergroupcm/renthox-car-rent-server/internal/repository"
	"github.com/spidergroupcm/renthox-car-rent-server/internal/router"
	queue_publisher "github.com/spidergroupcm/renthox-car-rent-server/internal/service"
)

func main() {
	_ = godotenv.Load() // load .env when present; real env vars win
	cfg := config.Load()

	// The Mongo client is constructed once here and handed to the
	// repositories; it is torn down in the shutdown path below.
	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}
	db := client.Database(cfg.DBName)
	log.Printf("connected to MongoDB (db=%s)", cfg.DBName)

	cars := repository.NewCarRepo(db)
	bookings := repository.NewBookingRepo(db)

	// The unique (renterEmail, carId) index backs the duplicate-booking
	// guard. Startup proceeds without it; the pre-insert check still holds.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := bookings.EnsureIndexes(ctx); err != nil {
			log.Printf("booking indexes: %v", err)
		}
		cancel()
	}

	authH := handler.NewAuthHandler(cfg)
	carH := handler.NewCarHandler(cars)
	bookH := handler.NewBookingHandler(bookings, cars)
	bookH.Publish = queue_publisher.PublishBookingCreated

	e := echo.New()
	e.HideBanner = true

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), config.NewRedisClient())
	router.Register(e, cfg, authH, carH, bookH, cacheMW)

	// Background consumer appending booking.created events to the log file.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	go func() {
		addr := ":" + cfg.Port
		log.Printf("car rental server listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	// Graceful termination: stop accepting requests, then release the
	// database client.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if err := database.Disconnect(client); err != nil {
		log.Printf("mongodb disconnect: %v", err)
	}
}
