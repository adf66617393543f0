package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"siteproof/internal/server/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Storage is the data access surface the API handlers depend on.
type Storage interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserStats(ctx context.Context, userID int) (*models.UserStats, error)
	GetTasks(ctx context.Context) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, id int, status string) (*models.Task, error)
	MarkAttendance(ctx context.Context, entry models.InsertAttendance) (*models.Attendance, error)
	GetAttendanceHistory(ctx context.Context, userID int) ([]models.Attendance, error)
}

// Postgres implements Storage on top of a pgx-backed sql.DB.
type Postgres struct {
	db *sql.DB
}

var _ Storage = (*Postgres)(nil)

func NewPostgres(db *DB) *Postgres {
	return &Postgres{db: db.Client}
}

func (p *Postgres) GetUser(ctx context.Context, id int) (*models.User, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT id, username, name, role, avatar, location, preferred_language
		 FROM users WHERE id = $1`, id)

	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Role, &u.Avatar, &u.Location, &u.PreferredLanguage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &u, nil
}

func (p *Postgres) GetUserStats(ctx context.Context, userID int) (*models.UserStats, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT id, user_id, attendance_rate, hours_worked, tasks_completed
		 FROM stats WHERE user_id = $1`, userID)

	var s models.UserStats
	err := row.Scan(&s.ID, &s.UserID, &s.AttendanceRate, &s.HoursWorked, &s.TasksCompleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}
	return &s, nil
}

func (p *Postgres) GetTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, title, time, location, status, priority, supervisor, supervisor_avatar, date
		 FROM tasks ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Time, &t.Location, &t.Status, &t.Priority,
			&t.Supervisor, &t.SupervisorAvatar, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (p *Postgres) UpdateTaskStatus(ctx context.Context, id int, status string) (*models.Task, error) {
	row := p.db.QueryRowContext(ctx,
		`UPDATE tasks SET status = $1 WHERE id = $2
		 RETURNING id, title, time, location, status, priority, supervisor, supervisor_avatar, date`,
		status, id)

	var t models.Task
	err := row.Scan(&t.ID, &t.Title, &t.Time, &t.Location, &t.Status, &t.Priority,
		&t.Supervisor, &t.SupervisorAvatar, &t.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return &t, nil
}

func (p *Postgres) MarkAttendance(ctx context.Context, entry models.InsertAttendance) (*models.Attendance, error) {
	row := p.db.QueryRowContext(ctx,
		`INSERT INTO attendance (user_id, date, status, location, photo_url, is_synced)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, date, status, location, photo_url, is_synced`,
		entry.UserID, entry.Date, entry.Status, entry.Location, entry.PhotoURL, entry.IsSynced)

	var a models.Attendance
	if err := row.Scan(&a.ID, &a.UserID, &a.Date, &a.Status, &a.Location, &a.PhotoURL, &a.IsSynced); err != nil {
		return nil, fmt.Errorf("failed to insert attendance: %w", err)
	}
	return &a, nil
}

func (p *Postgres) GetAttendanceHistory(ctx context.Context, userID int) ([]models.Attendance, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, user_id, date, status, location, photo_url, is_synced
		 FROM attendance WHERE user_id = $1 ORDER BY date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var history []models.Attendance
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.Status, &a.Location, &a.PhotoURL, &a.IsSynced); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		history = append(history, a)
	}
	return history, rows.Err()
}
