package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService          jwt.Service
	AuthHandler         AuthHandler
	UserHandler         UserHandler
	AttendanceHandler   AttendanceHandler
	ReportHandler       ReportHandler
	LeaveHandler        LeaveHandler
	TaskHandler         TaskHandler
	AnnouncementHandler AnnouncementHandler
	AnalyticsHandler    AnalyticsHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.AuthHandler.Register)
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", deps.UserHandler.GetProfile)
				r.Put("/", deps.UserHandler.UpdateProfile)
				r.Put("/device-token", deps.UserHandler.UpdateDeviceToken)

				r.With(middleware.RequirePermission(user.PermissionUserViewByDept)).
					Get("/department/{department}", deps.UserHandler.GetUsersByDepartment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/all", deps.UserHandler.GetAllProfiles)
					r.Delete("/{id}", deps.UserHandler.Delete)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.With(middleware.AdminOnly).
					Put("/{id}/status", deps.UserHandler.UpdateStatus)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceCheckIn))
					r.Post("/checkin", deps.AttendanceHandler.CheckIn)
					r.Post("/checkout", deps.AttendanceHandler.CheckOut)
				})

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).
					Get("/history", deps.AttendanceHandler.GetHistory)

				r.With(middleware.RequirePermission(user.PermissionAttendanceReports)).
					Get("/reports", deps.ReportHandler.GetAttendanceReports)

				r.With(middleware.RequirePermission(user.PermissionAttendanceTeam)).
					Get("/team/{department}", deps.ReportHandler.GetTeamAttendance)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).
					Post("/", deps.LeaveHandler.Request)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).
					Get("/", deps.LeaveHandler.GetAllLeaves)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).
					Get("/my", deps.LeaveHandler.GetMyLeaves)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewByDept)).
					Get("/department/{department}", deps.LeaveHandler.GetByDepartment)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).
					Put("/{id}/status", deps.LeaveHandler.UpdateStatus)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionTaskAssign)).
					Post("/", deps.TaskHandler.Assign)
				r.With(middleware.RequirePermission(user.PermissionTaskViewAll)).
					Get("/", deps.TaskHandler.GetAllTasks)
				r.With(middleware.RequirePermission(user.PermissionTaskViewOwn)).
					Get("/my", deps.TaskHandler.GetMyTasks)
				r.With(middleware.RequirePermission(user.PermissionTaskUpdate)).
					Put("/{id}/status", deps.TaskHandler.UpdateStatus)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAnnouncementView)).
					Get("/", deps.AnnouncementHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAnnouncementManage))
					r.Post("/", deps.AnnouncementHandler.Create)
					r.Delete("/{id}", deps.AnnouncementHandler.Delete)
				})
			})

			r.Route("/analytics", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAnalyticsView)).
					Get("/stats", deps.AnalyticsHandler.GetStats)
			})
		})
	})

	return r
}
