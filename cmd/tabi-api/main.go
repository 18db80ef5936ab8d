// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tabi/internal/ai"
	"tabi/internal/config"
	httptransport "tabi/internal/http"
	"tabi/internal/infra"
	"tabi/internal/maps"
	"tabi/internal/modules/aiquota"
	"tabi/internal/modules/booking"
	"tabi/internal/modules/itinerary"
	"tabi/internal/modules/transit"
	"tabi/internal/modules/translate"
	"tabi/internal/modules/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("TABI_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	completer, err := newCompleter(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("ai init: %v", err)
	}

	itinerarySvc := itinerary.NewService(itinerary.NewStore(dbPool), completer)
	quotaSvc := aiquota.NewService(aiquota.NewStore(dbPool))
	bookingSvc := booking.NewService(booking.NewStore(dbPool))
	weatherSvc := weather.NewService(weather.NewClient(cfg.Keys.OpenWeather), redisClient)
	translateSvc := translate.NewService(cfg.Keys.DeepL)

	deps := httptransport.RouterDeps{
		Verifier:  verifier,
		Itinerary: itinerarySvc,
		Quota:     quotaSvc,
		Booking:   bookingSvc,
		Translate: translateSvc,
		Weather:   weatherSvc,
	}

	if cfg.Keys.GoogleMaps != "" {
		if deps.Routes, err = maps.NewRouteService(cfg.Keys.GoogleMaps); err != nil {
			log.Fatalf("maps init: %v", err)
		}
		if deps.Places, err = maps.NewPlacesService(cfg.Keys.GoogleMaps); err != nil {
			log.Fatalf("places init: %v", err)
		}
		if deps.Transit, err = transit.NewService(cfg.Keys.GoogleMaps); err != nil {
			log.Fatalf("transit init: %v", err)
		}
	} else {
		log.Printf("GOOGLE_MAPS_API_KEY not set; map and transit routes disabled")
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(deps)}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// newCompleter picks the configured provider. Credential presence is checked
// here, at construction, so a missing key fails the process at startup rather
// than on the first request.
func newCompleter(ctx context.Context, cfg config.AIConfig) (ai.TextCompleter, error) {
	switch cfg.Provider {
	case "openai":
		return ai.NewOpenAICompleter(ai.Config{
			APIKey:      cfg.OpenAIKey,
			Model:       cfg.Model,
			Temperature: float32(cfg.Temperature),
		})
	default:
		return ai.NewGeminiCompleter(ctx, ai.Config{
			APIKey:      cfg.GeminiKey,
			Model:       cfg.Model,
			Temperature: float32(cfg.Temperature),
		})
	}
}
