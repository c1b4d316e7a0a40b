package api

import (
	v1 "github.com/coursebill/coursebill/internal/api/v1"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health  *v1.HealthHandler
	Offer   *v1.OfferHandler
	Booking *v1.BookingHandler
	Revenue *v1.RevenueHandler
}

func NewRouter(handlers Handlers, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	// v1 routes require an owner (tenant) scope
	v1Group := router.Group("/v1")
	v1Group.Use(middleware.OwnerMiddleware(log))
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Offer routes
	offers := router.Group("/offers")
	{
		offers.POST("", handlers.Offer.CreateOffer)
		offers.GET("", handlers.Offer.GetAllOffers)
		offers.GET("/:id", handlers.Offer.GetOfferByID)
	}

	// Booking routes
	bookings := router.Group("/bookings")
	{
		bookings.POST("", handlers.Booking.CreateBooking)
		bookings.GET("", handlers.Booking.ListBookings)
		bookings.GET("/:id", handlers.Booking.GetBookingByID)
		bookings.POST("/import", handlers.Booking.ImportBookings)
		bookings.POST("/:id/invoice", handlers.Booking.IssueInvoice)
		bookings.POST("/:id/cancel", handlers.Booking.CancelBooking)
		bookings.POST("/:id/storno", handlers.Booking.StornoBooking)
	}

	// Revenue routes
	revenue := router.Group("/revenue")
	{
		revenue.GET("/report", handlers.Revenue.GetReport)
	}
}
