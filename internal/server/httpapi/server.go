// Package httpapi exposes the public JSON API: router, auth middleware,
// and handlers. Every response carries a success flag; error bodies are
// {"success":false,"message":...}.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sagernet/cors"

	"github.com/dmitrijs2005/skillbridge/internal/logging"
	"github.com/dmitrijs2005/skillbridge/internal/server/config"
	"github.com/dmitrijs2005/skillbridge/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	users    *services.UserService
	courses  *services.CourseService
	sessions *services.SessionService
	doubts   *services.DoubtService

	secretKey []byte
	logger    logging.Logger
	srv       *http.Server
}

func NewServer(cfg *config.Config, users *services.UserService, courses *services.CourseService,
	sessions *services.SessionService, doubts *services.DoubtService, logger logging.Logger) *Server {

	s := &Server{
		users:     users,
		courses:   courses,
		sessions:  sessions,
		doubts:    doubts,
		secretKey: []byte(cfg.SecretKey),
		logger:    logger,
	}
	s.srv = &http.Server{Addr: cfg.EndpointAddr, Handler: s.Handler()}
	return s
}

// Handler builds the chi router. Exported so tests can drive the API
// without a listening socket.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	corsM := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	})
	r.Use(corsM.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.register)
		r.Post("/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.optionalAuth)
			r.Get("/courses", s.listCourses)
			r.Get("/courses/{id}", s.getCourse)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/courses", s.createCourse)
			r.Put("/courses/{id}", s.updateCourse)
			r.Delete("/courses/{id}", s.deleteCourse)
			r.Post("/courses/{id}/enroll", s.enrollCourse)

			r.Get("/users", s.listUsers)
			r.Delete("/users/{id}", s.deleteUser)
			r.Get("/profile", s.getProfile)
			r.Put("/profile", s.updateProfile)

			r.Get("/sessions", s.listSessions)
			r.Post("/sessions", s.createSession)
			r.Put("/sessions/{id}", s.updateSession)
			r.Delete("/sessions/{id}", s.deleteSession)

			r.Get("/doubts", s.listDoubts)
			r.Post("/doubts", s.createDoubt)
			r.Post("/doubts/{id}/replies", s.addDoubtReply)
		})
	})

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http api listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}
