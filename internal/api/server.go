package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/limbo/fitdash/internal/service"
)

// StreamerI holds a realtime connection of the user open until it is closed.
type StreamerI interface {
	Serve(w http.ResponseWriter, r *http.Request, uid uuid.UUID) error
}

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	profileService service.ProfileServiceI
	dashboards     service.DashboardsServiceI
	jwtService     JWTServiceI
	streamer       StreamerI
	allowedOrigins []string
}

type ServicesList struct {
	UserService    service.UserServiceI
	ProfileService service.ProfileServiceI
	Dashboards     service.DashboardsServiceI
	JwtService     JWTServiceI
	Streamer       StreamerI
	AllowedOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		profileService: servicesOptions.ProfileService,
		dashboards:     servicesOptions.Dashboards,
		jwtService:     servicesOptions.JwtService,
		streamer:       servicesOptions.Streamer,
		allowedOrigins: servicesOptions.AllowedOrigins,
	}
	if len(s.allowedOrigins) == 0 {
		s.allowedOrigins = []string{"*"}
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(pr chi.Router) {
			pr.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			pr.Get("/profile", s.GetProfile)
			pr.Put("/profile", s.SaveProfile)

			pr.Route("/dashboard", func(dr chi.Router) {
				dr.Get("/", s.GetDashboard)
				dr.Get("/snapshot", s.GetDashboardSnapshot)
				dr.Get("/stream", s.StreamDashboard)
				dr.Post("/water", s.LogWater)
				dr.Post("/steps", s.LogSteps)
				dr.Post("/meals", s.LogMeal)
				dr.Post("/workouts", s.LogWorkout)
				dr.Post("/weight", s.LogWeight)
				dr.Post("/refresh", s.RefreshDashboard)
			})
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", slog.String("addr", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutdown initiated")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	slog.Info("server stopped")
	return nil
}
