package activitylog

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/activitylog"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type ActivityLogServiceImpl struct {
	activityLogRepo activitylog.ActivityLogRepository
	employeeRepo    employee.EmployeeRepository
	loc             *time.Location
	storeTimeout    time.Duration
	now             func() time.Time
}

func NewActivityLogService(activityLogRepo activitylog.ActivityLogRepository, employeeRepo employee.EmployeeRepository, loc *time.Location, storeTimeout time.Duration) activitylog.ActivityLogService {
	if loc == nil {
		loc = time.UTC
	}
	return &ActivityLogServiceImpl{
		activityLogRepo: activityLogRepo,
		employeeRepo:    employeeRepo,
		loc:             loc,
		storeTimeout:    storeTimeout,
		now:             time.Now,
	}
}

func (s *ActivityLogServiceImpl) withStoreTimeout(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	return database.WithTimeout(ctx, s.storeTimeout, op, fn)
}

// Add implements activitylog.ActivityLogService.
func (s *ActivityLogServiceImpl) Add(ctx context.Context, req activitylog.AddActivityLogRequest) (activitylog.ActivityLogResponse, error) {
	if err := req.Validate(); err != nil {
		return activitylog.ActivityLogResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return activitylog.ActivityLogResponse{}, fmt.Errorf("failed to generate activity log id: %w", err)
	}

	var created activitylog.ActivityLog
	err = s.withStoreTimeout(ctx, "create activity log", func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}
		var err error
		created, err = s.activityLogRepo.Create(ctx, activitylog.ActivityLog{
			ID:          id.String(),
			EmployeeID:  req.EmployeeID,
			Date:        s.now().UTC().Truncate(time.Second),
			Description: req.Description,
			Status:      activitylog.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return activitylog.ActivityLogResponse{}, err
	}

	return s.toResponse(created), nil
}

// ListByEmployee implements activitylog.ActivityLogService.
func (s *ActivityLogServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]activitylog.ActivityLogResponse, error) {
	var logs []activitylog.ActivityLog
	err := s.withStoreTimeout(ctx, "list activity logs", func(ctx context.Context) error {
		var err error
		logs, err = s.activityLogRepo.ListByEmployee(ctx, employeeID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	if len(logs) == 0 {
		return nil, activitylog.ErrNoActivityLogs
	}
	return s.toResponses(logs), nil
}

// Edit implements activitylog.ActivityLogService.
func (s *ActivityLogServiceImpl) Edit(ctx context.Context, req activitylog.EditActivityLogRequest) (activitylog.ActivityLogResponse, error) {
	if err := req.Validate(); err != nil {
		return activitylog.ActivityLogResponse{}, err
	}

	return s.update(ctx, req.EmployeeID, req.ID, func(log *activitylog.ActivityLog) {
		if req.Description != nil {
			log.Description = *req.Description
		}
		if req.Status != nil {
			log.Status = activitylog.Status(*req.Status)
		}
	})
}

// Accept implements activitylog.ActivityLogService.
func (s *ActivityLogServiceImpl) Accept(ctx context.Context, employeeID, id string) (activitylog.ActivityLogResponse, error) {
	return s.setStatus(ctx, employeeID, id, activitylog.StatusAccepted)
}

// Reject implements activitylog.ActivityLogService.
func (s *ActivityLogServiceImpl) Reject(ctx context.Context, employeeID, id string) (activitylog.ActivityLogResponse, error) {
	return s.setStatus(ctx, employeeID, id, activitylog.StatusRejected)
}

func (s *ActivityLogServiceImpl) setStatus(ctx context.Context, employeeID, id string, status activitylog.Status) (activitylog.ActivityLogResponse, error) {
	return s.update(ctx, employeeID, id, func(log *activitylog.ActivityLog) {
		log.Status = status
	})
}

func (s *ActivityLogServiceImpl) update(ctx context.Context, employeeID, id string, mutate func(log *activitylog.ActivityLog)) (activitylog.ActivityLogResponse, error) {
	var updated activitylog.ActivityLog
	err := s.withStoreTimeout(ctx, "update activity log", func(ctx context.Context) error {
		log, err := s.activityLogRepo.GetByID(ctx, employeeID, id)
		if err != nil {
			return err
		}

		mutate(&log)

		updated, err = s.activityLogRepo.Update(ctx, log)
		if err != nil {
			return fmt.Errorf("failed to update activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return activitylog.ActivityLogResponse{}, err
	}
	return s.toResponse(updated), nil
}

// ListByDate implements activitylog.ActivityLogService.
func (s *ActivityLogServiceImpl) ListByDate(ctx context.Context, date string) ([]activitylog.ActivityLogResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	from, _ := time.ParseInLocation("2006-01-02", date, s.loc)
	to := from.AddDate(0, 0, 1)

	var logs []activitylog.ActivityLog
	err := s.withStoreTimeout(ctx, "list activity logs by date", func(ctx context.Context) error {
		var err error
		logs, err = s.activityLogRepo.ListBetween(ctx, from.UTC(), to.UTC())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs by date: %w", err)
	}
	if len(logs) == 0 {
		return nil, activitylog.ErrNoActivityLogs
	}
	return s.toResponses(logs), nil
}

// ListAll implements activitylog.ActivityLogService.
func (s *ActivityLogServiceImpl) ListAll(ctx context.Context) ([]activitylog.ActivityLogResponse, error) {
	var logs []activitylog.ActivityLog
	err := s.withStoreTimeout(ctx, "list all activity logs", func(ctx context.Context) error {
		var err error
		logs, err = s.activityLogRepo.ListAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return s.toResponses(logs), nil
}

func (s *ActivityLogServiceImpl) toResponses(logs []activitylog.ActivityLog) []activitylog.ActivityLogResponse {
	responses := make([]activitylog.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, s.toResponse(l))
	}
	return responses
}

func (s *ActivityLogServiceImpl) toResponse(log activitylog.ActivityLog) activitylog.ActivityLogResponse {
	return activitylog.ActivityLogResponse{
		ID:          log.ID,
		EmployeeID:  log.EmployeeID,
		Date:        log.Date.In(s.loc).Format(time.RFC3339),
		Description: log.Description,
		Status:      string(log.Status),
	}
}
