package main

import (
	"context"
	"time"

	"github.com/coursebill/coursebill/internal/api"
	v1 "github.com/coursebill/coursebill/internal/api/v1"
	"github.com/coursebill/coursebill/internal/cache"
	"github.com/coursebill/coursebill/internal/config"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/postgres"
	"github.com/coursebill/coursebill/internal/repository"
	"github.com/coursebill/coursebill/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewDB,

			// Repositories
			repository.NewOfferRepository,
			repository.NewBookingRepository,
			repository.NewSequenceRepository,

			// Services
			service.NewServiceParams,
			service.NewSequenceAllocator,
			service.NewOfferService,
			service.NewBookingService,
			service.NewRevenueService,

			// Handlers
			v1.NewHealthHandler,
			v1.NewOfferHandler,
			v1.NewBookingHandler,
			v1.NewRevenueHandler,
			provideHandlers,

			// Router
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	health *v1.HealthHandler,
	offer *v1.OfferHandler,
	booking *v1.BookingHandler,
	revenue *v1.RevenueHandler,
) api.Handlers {
	return api.Handlers{
		Health:  health,
		Offer:   offer,
		Booking: booking,
		Revenue: revenue,
	}
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	db postgres.IClient,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			db.Close()
			return nil
		},
	})
}
