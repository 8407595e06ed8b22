package http

import (
	"log/slog"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/handler/http/middleware"
	"github.com/codezenith/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Schedule   ScheduleHandler
	Master     MasterHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	// GoogleEnabled mounts the Google sign-in routes.
	GoogleEnabled bool
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.ClientIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/api/health"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			if opts.GoogleEnabled {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/google/callback", h.Auth.OAuthCallbackGoogle)
			}

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired)
				r.Get("/me", h.Auth.Me)
				r.Put("/password", h.Auth.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/employees", func(r chi.Router) {
				r.Route("/profile/me", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionViewOwnProfile)).Get("/", h.Employee.GetMyProfile)
					r.With(middleware.RequirePermission(user.PermissionEditOwnProfile)).Put("/", h.Employee.UpdateMyProfile)
				})

				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", h.Employee.List)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Post("/", h.Employee.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", h.Employee.Get)
					r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Put("/", h.Employee.Update)
					r.With(middleware.RequireAdmin).Delete("/", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceCreate))
					r.Post("/check-in", h.Attendance.CheckIn)
					r.Post("/check-out", h.Attendance.CheckOut)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewOwn))
					r.Get("/me", h.Attendance.GetMyAttendance)
					r.Get("/today", h.Attendance.GetToday)
				})

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/", h.Attendance.List)
				r.With(middleware.RequirePermission(user.PermissionAttendanceStats)).Get("/today-stats", h.Attendance.GetTodayStats)
				r.With(middleware.RequirePermission(user.PermissionAttendanceCorrect)).Put("/{id}", h.Attendance.Correct)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/", h.Leave.CreateRequest)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/", h.Leave.ListRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveViewOwn))
					r.Get("/me", h.Leave.GetMyRequests)
					r.Get("/balance/me", h.Leave.GetMyBalance)
					// Cancel is restricted to the owner inside the service.
					r.Delete("/{id}", h.Leave.CancelRequest)
				})

				r.Get("/balance/{employeeID}", h.Leave.GetBalance)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Put("/{id}", h.Leave.DecideRequest)

				r.Route("/types", func(r chi.Router) {
					r.Get("/", h.Leave.ListTypes)
					r.With(middleware.RequirePermission(user.PermissionLeaveManageTypes)).Post("/", h.Leave.CreateType)
					r.With(middleware.RequirePermission(user.PermissionLeaveManageTypes)).Put("/{id}", h.Leave.UpdateType)
					r.With(middleware.RequirePermission(user.PermissionLeaveDeleteTypes)).Delete("/{id}", h.Leave.DeleteType)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionSettingsView))

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", h.Schedule.ListShifts)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
						r.Post("/", h.Schedule.CreateShift)
						r.Put("/{id}", h.Schedule.UpdateShift)
						r.Delete("/{id}", h.Schedule.DeleteShift)
					})
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", h.Schedule.ListHolidays)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
						r.Post("/", h.Schedule.CreateHoliday)
						r.Put("/{id}", h.Schedule.UpdateHoliday)
						r.Delete("/{id}", h.Schedule.DeleteHoliday)
					})
				})

				r.Route("/departments", func(r chi.Router) {
					r.Get("/", h.Master.ListDepartments)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
						r.Post("/", h.Master.CreateDepartment)
						r.Put("/{id}", h.Master.UpdateDepartment)
						r.Delete("/{id}", h.Master.DeleteDepartment)
					})
				})

				r.Get("/", h.Master.ListSettings)
				r.Get("/{key}", h.Master.GetSetting)
				r.With(middleware.RequirePermission(user.PermissionSettingsManage)).Put("/{key}", h.Master.UpsertSetting)
			})
		})
	})
	return r
}
