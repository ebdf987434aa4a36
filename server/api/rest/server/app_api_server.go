package server

import (
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/onboarding-platform/onboarding/common/logger"
)

// DefaultCORSAllowedOrigins are the origins the web application is served from during development.
var DefaultCORSAllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

type AppAPIServerConfig struct {
	HTTPServerConfig
}

type AppAPIServer struct {
	APIServer
}

func NewAppAPIServer(appAPI *AppAPIRouter, config AppAPIServerConfig, httpServerFactory HTTPServerFactory, logFactory logger.LogFactory) (*AppAPIServer, error) {
	httpServer, err := httpServerFactory(appAPI, config.HTTPServerConfig, logFactory("AppAPIServer"))
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP server: %w", err)
	}
	return &AppAPIServer{
		APIServer: httpServer,
	}, nil
}

// CORSAllowedOrigins lists the origins browsers may call the API from.
type CORSAllowedOrigins []string

type AppAPIRouter struct {
	chi.Router
}

func NewAppAPIRouter(
	signup *SignupAPI,
	legalEntity *LegalEntityAPI,
	root *RootAPI,
	allowedOrigins CORSAllowedOrigins,
	logFactory logger.LogFactory) *AppAPIRouter {

	logger := logFactory("AppAPIRouter").
		WithField("version", "v1")

	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultCORSAllowedOrigins
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	r.Use(middleware.Compress(6))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {

		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link", "Location"},
			AllowCredentials: true,
			MaxAge:           300, // Maximum value not ignored by any of major browsers
		}))

		r.Route("/v1", func(r chi.Router) {
			r.Get("/", root.GetRootDocument)
			r.Route("/signup", func(r chi.Router) {
				r.Post("/individual", signup.CreateIndividual)
				r.Post("/sole-proprietorship", signup.CreateSoleProprietorship)
				r.Post("/organisation", signup.CreateOrganisation)
			})
			r.Route("/legal-entities/{legal_entity_id}", func(r chi.Router) {
				r.Get("/", legalEntity.Get)
				r.Post("/business-lines", legalEntity.CreateBusinessLine)
				r.Get("/onboarding-link", legalEntity.GetOnboardingLink)
			})
		})
	})

	return &AppAPIRouter{Router: r}
}
