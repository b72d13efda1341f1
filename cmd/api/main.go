package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/activitylog"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/project"
	appHTTP "github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/postgresql"
	activityLogService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/activitylog"
	attendanceService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/employee"
	projectService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/project"
	scheduleService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/schedule"
)

type repositories struct {
	tx          database.Transactor
	attendance  attendance.AttendanceRepository
	presence    attendance.PresenceRepository
	employee    employee.EmployeeRepository
	project     project.ProjectRepository
	activityLog activitylog.ActivityLogRepository
	close       func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.App.LogLevel),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize store: ", err)
	}
	defer repos.close()

	loc := cfg.Location()

	templates, err := scheduleService.TemplatesFromConfig(cfg.Shift)
	if err != nil {
		log.Fatal("Invalid shift configuration: ", err)
	}
	resolver := scheduleService.NewShiftResolver(
		templates,
		time.Duration(cfg.Attendance.BreakAllowanceMinutes)*time.Minute,
		loc,
	)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(
		repos.tx,
		repos.attendance,
		repos.presence,
		repos.employee,
		resolver,
		cfg.Attendance,
		loc,
		cfg.Database.StoreTimeout,
	)
	employeeSvc := employeeService.NewEmployeeService(repos.employee, resolver, cfg.Database.StoreTimeout)
	projectSvc := projectService.NewProjectService(repos.project, repos.employee, loc, cfg.Database.StoreTimeout)
	activityLogSvc := activityLogService.NewActivityLogService(repos.activityLog, repos.employee, loc, cfg.Database.StoreTimeout)

	scheduler := cron.NewScheduler(loc)
	attendanceJobs := cron.NewAttendanceJobs(repos.employee, repos.presence, attendanceSvc, loc, cfg.Database.StoreTimeout)
	if err := attendanceJobs.RegisterJobs(scheduler, cfg.Cron.AbsenceSchedule); err != nil {
		log.Fatal("Failed to register cron jobs: ", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewProjectHandler(projectSvc),
		appHTTP.NewActivityLogHandler(activityLogSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "driver", cfg.Database.Driver, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

func newRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		return &repositories{
			tx:          memory.NewTransactor(store),
			attendance:  memory.NewAttendanceRepository(store),
			presence:    memory.NewPresenceRepository(store),
			employee:    memory.NewEmployeeRepository(store),
			project:     memory.NewProjectRepository(store),
			activityLog: memory.NewActivityLogRepository(store),
			close:       func() {},
		}, nil
	default:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("error connecting to database: %w", err)
		}
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{
			tx:          postgresql.NewTransactor(db),
			attendance:  postgresql.NewAttendanceRepository(db),
			presence:    postgresql.NewPresenceRepository(db),
			employee:    postgresql.NewEmployeeRepository(db),
			project:     postgresql.NewProjectRepository(db),
			activityLog: postgresql.NewActivityLogRepository(db),
			close:       db.Close,
		}, nil
	}
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
