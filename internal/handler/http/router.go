package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	appConfig config.AppConfig,
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	projectHandler ProjectHandler,
	activityLogHandler ActivityLogHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(appConfig.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-cmlabs"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appConfig.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkin", attendanceHandler.CheckIn)
				r.Get("/shift", attendanceHandler.GetMyShift)
				r.Get("/{employeeID}/{date}", attendanceHandler.Get)

				// Admin only
				r.With(middleware.AdminOnly).Put("/{employeeID}/{date}/excused", attendanceHandler.MarkExcused)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}/work-times", employeeHandler.UpdateWorkTimes)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Get("/active", projectHandler.ListActive)
				r.Get("/employee/{employeeID}", projectHandler.ListByEmployee)
				r.Get("/{id}", projectHandler.Get)
				r.Get("/{id}/members", projectHandler.GetMembers)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", projectHandler.Create)
					r.Post("/{id}/members", projectHandler.AddMember)
					r.Put("/{id}/dates", projectHandler.EditDates)
				})
			})

			r.Route("/activity-logs", func(r chi.Router) {
				r.Post("/", activityLogHandler.Add)
				r.Get("/{employeeID}", activityLogHandler.ListByEmployee)
				r.Put("/{employeeID}/{id}", activityLogHandler.Edit)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", activityLogHandler.ListAll)
					r.Get("/date/{date}", activityLogHandler.ListByDate)
					r.Post("/{employeeID}/{id}/accept", activityLogHandler.Accept)
					r.Post("/{employeeID}/{id}/reject", activityLogHandler.Reject)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
