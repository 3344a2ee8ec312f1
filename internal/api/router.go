package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/englishk12/backend/internal/domain/user"
)

// NewRouter wires every route. Middleware chain:
// RequestID → RealIP → Logging → Recoverer → CORS → routes.
func NewRouter(h *Handler, logger *slog.Logger, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, Logging(logger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger UI served at /swagger/
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.login)

		r.Group(func(pr chi.Router) {
			pr.Use(RequireAuth(h.svc.Issuer))

			pr.Get("/auth/session", h.restoreSession)
			pr.Post("/auth/logout", h.logout)
			pr.Get("/me", h.me)

			// Teacher
			pr.Group(func(tr chi.Router) {
				tr.Use(RequireRole(user.RoleTeacher))

				tr.Get("/questions", h.listQuestions)
				tr.Post("/questions", h.createQuestion)
				tr.Post("/questions/generate", h.generateQuestion)
				tr.Get("/questions/{questionID}", h.getQuestion)
				tr.Put("/questions/{questionID}", h.updateQuestion)
				tr.Delete("/questions/{questionID}", h.deleteQuestion)

				tr.Get("/settings", h.getSettings)
				tr.Put("/settings", h.updateSettings)

				tr.Get("/reports/students", h.studentReports)

				tr.Get("/export", h.exportAll)
				tr.Post("/import", h.importAll)
			})

			// Student
			pr.Group(func(sr chi.Router) {
				sr.Use(RequireRole(user.RoleStudent))

				sr.Post("/sessions", h.startSession)
				sr.Get("/sessions/{sessionID}", h.getSession)
				sr.Post("/sessions/{sessionID}/select", h.selectOption)
				sr.Post("/sessions/{sessionID}/confirm", h.confirmAnswer)
				sr.Post("/sessions/{sessionID}/next", h.nextQuestion)

				sr.Get("/review/history", h.history)
				sr.Get("/review/mistakes", h.mistakes)
			})
		})
	})

	return r
}
