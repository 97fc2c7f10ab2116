package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// RouterOptions configures the HTTP surface.
type RouterOptions struct {
	RateLimit  int
	RateWindow time.Duration
	StaticDir  string
	IndexFile  string
}

// NewRouter mounts the REST API under /api and the landing page assets.
func NewRouter(opts RouterOptions, logger logging.Logger, us UserService, es ExerciseService) http.Handler {
	h := &handlers{users: us, exercises: es, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(logger))
	r.Use(recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgNotAllowed)
	})

	r.Route("/api", func(r chi.Router) {
		if opts.RateLimit > 0 && opts.RateWindow > 0 {
			r.Use(httprate.Limit(
				opts.RateLimit,
				opts.RateWindow,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					writeError(w, http.StatusTooManyRequests, msgTooManyRequest)
				}),
			))
		}

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.createUser)
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.Post("/{id}/exercises", h.addExercise)
			r.Get("/{id}/logs", h.userLog)
		})
	})

	if opts.IndexFile != "" {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, opts.IndexFile)
		})
	}
	if opts.StaticDir != "" {
		r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir(opts.StaticDir))))
	}

	return r
}
