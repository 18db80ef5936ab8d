// README: HTTP router registration (gin).
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabi/internal/http/handlers"
	"tabi/internal/http/middleware"
	"tabi/internal/infra"
	"tabi/internal/maps"
	"tabi/internal/modules/booking"
	"tabi/internal/modules/itinerary"
	"tabi/internal/modules/transit"
	"tabi/internal/modules/translate"
	"tabi/internal/modules/weather"
)

// RouterDeps carries the wired services. Proxy services left nil (because
// their API key is absent) simply don't get routes registered.
type RouterDeps struct {
	Verifier  infra.TokenVerifier
	Itinerary *itinerary.Service
	Quota     handlers.Quota
	Booking   *booking.Service
	Routes    *maps.RouteService
	Places    *maps.PlacesService
	Transit   *transit.Service
	Translate *translate.Service
	Weather   *weather.Service
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))

	it := api.Group("/itinerary")
	itineraryHandler := handlers.NewItineraryHandler(deps.Itinerary, deps.Quota)
	it.POST("/generate", itineraryHandler.Generate)
	it.GET("", itineraryHandler.List)
	it.GET("/statistics", itineraryHandler.Statistics)
	it.GET("/:id", itineraryHandler.Get)
	it.PUT("/:id/adjust", itineraryHandler.Adjust)
	it.DELETE("/:id", itineraryHandler.Delete)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	api.POST("/bookings", bookingHandler.Create)
	api.GET("/bookings", bookingHandler.List)
	api.POST("/bookings/:id/cancel", bookingHandler.Cancel)

	if deps.Routes != nil && deps.Places != nil {
		mapHandler := handlers.NewMapHandler(deps.Routes, deps.Places)
		api.GET("/maps/route", mapHandler.Route)
		api.GET("/maps/places", mapHandler.Places)
		api.GET("/maps/travel-estimate", mapHandler.TravelEstimate)
		api.GET("/maps/ar-overlay", mapHandler.AROverlay)
	}
	if deps.Transit != nil {
		transitHandler := handlers.NewTransitHandler(deps.Transit)
		api.GET("/transit/schedule", transitHandler.Schedule)
	}
	if deps.Translate != nil {
		translateHandler := handlers.NewTranslateHandler(deps.Translate)
		api.POST("/translate/text", translateHandler.Text)
	}
	if deps.Weather != nil {
		weatherHandler := handlers.NewWeatherHandler(deps.Weather)
		api.GET("/weather", weatherHandler.Get)
	}

	return r
}
