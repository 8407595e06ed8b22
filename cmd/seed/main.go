package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codezenith/hrms-backend-go/assets"
	"github.com/codezenith/hrms-backend-go/internal/config"
	"github.com/codezenith/hrms-backend-go/internal/fixtures"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/codezenith/hrms-backend-go/internal/pkg/lock"
	"github.com/codezenith/hrms-backend-go/internal/pkg/logger"
	"github.com/codezenith/hrms-backend-go/internal/repository/postgresql"
	auditService "github.com/codezenith/hrms-backend-go/internal/service/audit"
	"github.com/codezenith/hrms-backend-go/internal/service/leave"
	"github.com/codezenith/hrms-backend-go/internal/service/master"
	scheduleService "github.com/codezenith/hrms-backend-go/internal/service/schedule"
)

func main() {
	file := flag.String("file", "", "seed file, defaults to the embedded seed.yaml")
	flag.Parse()

	if err := run(*file); err != nil {
		slog.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(file string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.App.LogLevel, cfg.App.Env)
	slog.SetDefault(log)

	raw := assets.Seed
	if file != "" {
		raw, err = os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
	}
	defaults, err := fixtures.Parse(raw)
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	leaveSvc := leave.NewLeaveService(
		postgresql.NewTxManager(db),
		postgresql.NewLeaveRequestRepository(db),
		postgresql.NewLeaveTypeRepository(db),
		postgresql.NewEmployeeRepository(db),
		lock.NewNoopLocker(),
		auditService.NewRecorder(postgresql.NewAuditLogRepository(db), log),
		nil,
	)

	seeder := fixtures.NewSeeder(
		postgresql.NewUserRepository(db),
		master.NewMasterService(postgresql.NewDepartmentRepository(db), postgresql.NewSettingRepository(db)),
		scheduleService.NewScheduleService(postgresql.NewShiftRepository(db), postgresql.NewHolidayRepository(db)),
		leaveSvc,
		log,
	)
	_, err = seeder.Seed(ctx, defaults)
	return err
}
