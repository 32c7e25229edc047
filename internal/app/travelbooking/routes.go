// Package travelbooking предоставляет маршруты для основного приложения.
package travelbooking

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	bookingcreate "github.com/magabrotheeeer/travel-booking/internal/http/handlers/booking/create"
	bookinglist "github.com/magabrotheeeer/travel-booking/internal/http/handlers/booking/list"
	bookingread "github.com/magabrotheeeer/travel-booking/internal/http/handlers/booking/read"
	bookingremove "github.com/magabrotheeeer/travel-booking/internal/http/handlers/booking/remove"
	bookingupdate "github.com/magabrotheeeer/travel-booking/internal/http/handlers/booking/update"
	"github.com/magabrotheeeer/travel-booking/internal/http/handlers/health"
	listingcreate "github.com/magabrotheeeer/travel-booking/internal/http/handlers/listing/create"
	listinglist "github.com/magabrotheeeer/travel-booking/internal/http/handlers/listing/list"
	listingread "github.com/magabrotheeeer/travel-booking/internal/http/handlers/listing/read"
	listingremove "github.com/magabrotheeeer/travel-booking/internal/http/handlers/listing/remove"
	listingupdate "github.com/magabrotheeeer/travel-booking/internal/http/handlers/listing/update"
	reviewcreate "github.com/magabrotheeeer/travel-booking/internal/http/handlers/review/create"
	reviewlist "github.com/magabrotheeeer/travel-booking/internal/http/handlers/review/list"
	"github.com/magabrotheeeer/travel-booking/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/travel-booking/internal/http/middlewarectx"
	bookingservice "github.com/magabrotheeeer/travel-booking/internal/services/booking"
	listingservice "github.com/magabrotheeeer/travel-booking/internal/services/listing"
	reviewservice "github.com/magabrotheeeer/travel-booking/internal/services/review"
	userservice "github.com/magabrotheeeer/travel-booking/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	userService *userservice.UserService,
	listingService *listingservice.ListingService,
	bookingService *bookingservice.BookingService,
	reviewService *reviewservice.ReviewService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Post("/users", register.New(logger, userService).ServeHTTP)

		r.Get("/listings", listinglist.New(logger, listingService).ServeHTTP)
		r.Post("/listings", listingcreate.New(logger, listingService).ServeHTTP)
		r.Get("/listings/{id}", listingread.New(logger, listingService).ServeHTTP)
		r.Put("/listings/{id}", listingupdate.New(logger, listingService).ServeHTTP)
		r.Patch("/listings/{id}", listingupdate.New(logger, listingService).ServeHTTP)
		r.Delete("/listings/{id}", listingremove.New(logger, listingService).ServeHTTP)

		r.Get("/bookings", bookinglist.New(logger, bookingService).ServeHTTP)
		r.Post("/bookings", bookingcreate.New(logger, bookingService).ServeHTTP)
		r.Get("/bookings/{id}", bookingread.New(logger, bookingService).ServeHTTP)
		r.Put("/bookings/{id}", bookingupdate.New(logger, bookingService).ServeHTTP)
		r.Patch("/bookings/{id}", bookingupdate.New(logger, bookingService).ServeHTTP)
		r.Delete("/bookings/{id}", bookingremove.New(logger, bookingService).ServeHTTP)

		r.Get("/reviews", reviewlist.New(logger, reviewService).ServeHTTP)
		r.Post("/reviews", reviewcreate.New(logger, reviewService).ServeHTTP)

		r.Get("/health", health.New(logger).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
