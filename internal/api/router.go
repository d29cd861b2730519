package api

import (
	"net/http"
	"time"

	"aurora_backend/internal/api/handler"
	"aurora_backend/internal/app/service"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

func NewRouter(
	userService *service.UserService,
	reservationService *service.ReservationService,
	staticDir string,
	log zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// The frontend is served from another origin; allow everything, the way
	// the original server did.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Bienvenue sur le serveur Aurora"))
	})

	// Client-facing routes
	authHandler := handler.NewAuthHandler(userService, log)
	authHandler.RegisterRoutes(r)

	reservationHandler := handler.NewReservationHandler(reservationService, log)
	reservationHandler.RegisterRoutes(r)

	// Admin routes. Deliberately unauthenticated: the two tiers are a routing
	// convention, not an enforced policy.
	adminHandler := handler.NewAdminHandler(userService, reservationService, log)
	r.Route("/admin", adminHandler.RegisterRoutes)

	// Static assets (the original served its whole directory; here they live
	// under a prefix so they cannot shadow the API).
	if staticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
		r.Handle("/static/*", fs)
	}

	return r
}

func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", chiMiddleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
