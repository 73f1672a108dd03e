package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehub/hr-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/hr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	timeOffHandler TimeOffHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	frontendURL string,
	uploadsPath string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded time-off attachments
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsPath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/timeoff", func(r chi.Router) {
				r.Get("/my", timeOffHandler.GetMyRequests)
				r.Post("/", timeOffHandler.CreateRequest)
				r.Post("/attachment", timeOffHandler.UploadAttachment)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", timeOffHandler.ListRequests)
					r.Post("/{id}/approve", timeOffHandler.ApproveRequest)
					r.Post("/{id}/reject", timeOffHandler.RejectRequest)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/my", attendanceHandler.GetMyAttendance)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", attendanceHandler.GetTeamAttendance)
				})
			})

			// HR only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Get("/employees", employeeHandler.List)
			})
		})
	})
	return r
}
