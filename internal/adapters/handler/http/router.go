package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/vncsmyrnk/livepoll/internal/core/ports"
)

type Handlers struct {
	Auth     *AuthHandler
	Polls    *PollHandler
	Votes    *VoteHandler
	Realtime http.Handler
}

type RouterOptions struct {
	AllowedOrigins []string
	// RequestLogging enables chi's per-request log lines.
	RequestLogging bool
}

func NewHandler(h Handlers, authService ports.AuthService, log *slog.Logger, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if opts.RequestLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler)

	requireAuth := AuthMiddleware(authService, log)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)

	r.Route("/polls", func(r chi.Router) {
		r.Get("/", h.Polls.ListPolls)
		r.With(requireAuth).Post("/", h.Polls.CreatePoll)
		r.Get("/{id}/results", h.Polls.Results)
		r.With(requireAuth).Post("/{id}/vote", h.Votes.VoteOnPoll)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/votes", h.Votes.ListVotes)
		r.Get("/mypolls", h.Polls.MyPolls)
	})

	if h.Realtime != nil {
		r.Handle("/ws", h.Realtime)
	}

	return r
}
