package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	employee_id, date, start_at, break_at, resume_at, end_at,
	time_debt, employee_name, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.EmployeeID, &att.Date, &att.Start, &att.Break, &att.Resume, &att.End,
		&att.TimeDebt, &att.EmployeeName, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	att.Start, att.Break, att.Resume, att.End = utc(att.Start), utc(att.Break), utc(att.Resume), utc(att.End)
	att.CreatedAt, att.UpdatedAt = att.CreatedAt.UTC(), att.UpdatedAt.UTC()
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, storeError("get attendance", err)
	}
	return att, nil
}

// LockDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) LockDay(ctx context.Context, employeeID string, date time.Time) error {
	if !inTransaction(ctx) {
		return ErrNoTransaction
	}
	q := GetQuerier(ctx, a.db)

	key := employeeID + "|" + date.Format("2006-01-02")
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return storeError("lock attendance day", err)
	}
	return nil
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, start_at, break_at, resume_at, end_at, time_debt, employee_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			start_at = EXCLUDED.start_at,
			break_at = EXCLUDED.break_at,
			resume_at = EXCLUDED.resume_at,
			end_at = EXCLUDED.end_at,
			time_debt = EXCLUDED.time_debt,
			employee_name = EXCLUDED.employee_name,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		record.EmployeeID, record.Date,
		record.Start, record.Break, record.Resume, record.End,
		record.TimeDebt, record.EmployeeName,
	))
	if err != nil {
		return attendance.Attendance{}, storeError("upsert attendance", err)
	}
	return saved, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 ORDER BY date`
	return a.list(ctx, "list attendance by employee", query, employeeID)
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE date = $1 ORDER BY employee_id`
	return a.list(ctx, "list attendance by date", query, date)
}

func (a *attendanceRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, storeError(op, err)
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, storeError(op, err)
	}

	return records, nil
}

type presenceRepository struct {
	db *database.DB
}

func NewPresenceRepository(db *database.DB) attendance.PresenceRepository {
	return &presenceRepository{db: db}
}

// GetByEmployeeAndDate implements attendance.PresenceRepository.
func (p *presenceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Presence, error) {
	q := GetQuerier(ctx, p.db)

	var presence attendance.Presence
	err := q.QueryRow(ctx,
		`SELECT employee_id, date, status, updated_at FROM presences WHERE employee_id = $1 AND date = $2`,
		employeeID, date,
	).Scan(&presence.EmployeeID, &presence.Date, &presence.Status, &presence.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Presence{}, attendance.ErrPresenceNotFound
		}
		return attendance.Presence{}, storeError("get presence", err)
	}

	presence.UpdatedAt = presence.UpdatedAt.UTC()
	return presence, nil
}

// Upsert implements attendance.PresenceRepository.
func (p *presenceRepository) Upsert(ctx context.Context, presence attendance.Presence) error {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO presences (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, presence.EmployeeID, presence.Date, presence.Status); err != nil {
		return storeError("upsert presence", err)
	}
	return nil
}

// InsertIfMissing implements attendance.PresenceRepository.
func (p *presenceRepository) InsertIfMissing(ctx context.Context, presence attendance.Presence) (bool, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO presences (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, presence.EmployeeID, presence.Date, presence.Status)
	if err != nil {
		return false, storeError("insert presence", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByDate implements attendance.PresenceRepository.
func (p *presenceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Presence, error) {
	q := GetQuerier(ctx, p.db)

	rows, err := q.Query(ctx,
		`SELECT employee_id, date, status, updated_at FROM presences WHERE date = $1 ORDER BY employee_id`,
		date,
	)
	if err != nil {
		return nil, storeError("list presence", err)
	}
	defer rows.Close()

	var records []attendance.Presence
	for rows.Next() {
		var presence attendance.Presence
		if err := rows.Scan(&presence.EmployeeID, &presence.Date, &presence.Status, &presence.UpdatedAt); err != nil {
			return nil, storeError("list presence", err)
		}
		presence.UpdatedAt = presence.UpdatedAt.UTC()
		records = append(records, presence)
	}

	if err = rows.Err(); err != nil {
		return nil, storeError("list presence", err)
	}

	return records, nil
}
