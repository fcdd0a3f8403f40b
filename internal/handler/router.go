package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/krish-maurya/Daily-Planner/internal/auth"
)

// NewRouter assembles the full HTTP surface. Every resource route sits
// behind the bearer-token gate; only /health is open.
func NewRouter(tasks *TaskHandler, goals *GoalHandler, jwtSecret string, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	authenticated := auth.Middleware(jwtSecret, logger)

	r.Route("/tasks", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", tasks.List)
		r.Post("/addtask", tasks.Create)
		r.Get("/month/{month}", tasks.ListByMonth)
		r.Put("/complete/{id}", tasks.ToggleCompletion)
		r.Put("/{id}", tasks.Update)
		r.Delete("/{id}", tasks.Delete)
	})

	r.Route("/goals", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", goals.List)
		r.Post("/addgoal", goals.Create)
		r.Put("/progress/{id}", goals.SetProgress)
		r.Put("/{id}", goals.Update)
		r.Delete("/{id}", goals.Delete)
	})

	return r
}
