package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codezenith/hrms-backend-go/internal/config"
	appHTTP "github.com/codezenith/hrms-backend-go/internal/handler/http"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/codezenith/hrms-backend-go/internal/pkg/email"
	"github.com/codezenith/hrms-backend-go/internal/pkg/jwt"
	"github.com/codezenith/hrms-backend-go/internal/pkg/lock"
	"github.com/codezenith/hrms-backend-go/internal/pkg/logger"
	"github.com/codezenith/hrms-backend-go/internal/pkg/oauth"
	"github.com/codezenith/hrms-backend-go/internal/pkg/telemetry"
	"github.com/codezenith/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/codezenith/hrms-backend-go/internal/service/attendance"
	auditService "github.com/codezenith/hrms-backend-go/internal/service/audit"
	serviceAuth "github.com/codezenith/hrms-backend-go/internal/service/auth"
	employeeService "github.com/codezenith/hrms-backend-go/internal/service/employee"
	"github.com/codezenith/hrms-backend-go/internal/service/leave"
	"github.com/codezenith/hrms-backend-go/internal/service/master"
	scheduleService "github.com/codezenith/hrms-backend-go/internal/service/schedule"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.App.LogLevel, cfg.App.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("telemetry shutdown", slog.Any("error", err))
		}
	}()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	locker := lock.NewNoopLocker()
	if cfg.Redis.Addr != "" {
		redisClient, err := lock.NewRedisClient(ctx, lock.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redisClient.Close()
		locker = lock.NewRedisLocker(redisClient, cfg.Redis.LockTTL)
	} else {
		log.Warn("REDIS_ADDR not set, per-employee locking is limited to database constraints")
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	auditRepo := postgresql.NewAuditLogRepository(db)
	txManager := postgresql.NewTxManager(db)

	accessExpiration, err := time.ParseDuration(cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("parse access expiration: %w", err)
	}
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, accessExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("initialize email service: %w", err)
	}
	mailer := email.NewDispatcher(emailService, log)
	defer mailer.Wait()

	recorder := auditService.NewRecorder(auditRepo, log)

	authService := serviceAuth.NewAuthService(userRepo, JWTService, googleService)
	employeeSvc := employeeService.NewEmployeeService(txManager, employeeRepo, userRepo, shiftRepo, recorder, mailer, cfg.App.FrontendURL)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, shiftRepo, locker, recorder, cfg.Location())
	leaveSvc := leave.NewLeaveService(txManager, leaveRequestRepo, leaveTypeRepo, employeeRepo, locker, recorder, mailer)
	scheduleSvc := scheduleService.NewScheduleService(shiftRepo, holidayRepo)
	masterSvc := master.NewMasterService(departmentRepo, settingRepo)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService, googleService, cfg.App.FrontendURL, cfg.App.Env == "production"),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
	}, appHTTP.RouterOptions{
		AllowedOrigins: cfg.App.CORSOrigins,
		Logger:         log,
		GoogleEnabled:  googleService != nil,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           otelhttp.NewHandler(router, "hrms-api"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server running", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
