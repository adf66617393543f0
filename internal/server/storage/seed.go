package storage

import (
	"context"
	"fmt"
	"strings"
)

type seedUser struct {
	role     string
	name     string
	phone    string
	location string
}

var demoUsers = []seedUser{
	{role: "Labour", name: "Ramesh Patil", phone: "9876543210", location: "Mumbai"},
	{role: "Supervisor", name: "Suresh Yadav", phone: "9876543211", location: "Pune"},
	{role: "Engineer", name: "Anjali Sharma", phone: "9876543212", location: "Navi Mumbai"},
	{role: "Owner", name: "Rohit Deshmukh", phone: "9876543213", location: "Thane"},
}

// SeedDemoData populates demo users, stats and tasks on an empty database.
// A database that already has users is left untouched.
func (p *Postgres) SeedDemoData(ctx context.Context) error {
	var count int
	if err := p.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, u := range demoUsers {
		avatar := "https://api.dicebear.com/7.x/avataaars/svg?seed=" + strings.Fields(u.name)[0]

		var userID int
		err := p.db.QueryRowContext(ctx,
			`INSERT INTO users (username, name, role, avatar, location, preferred_language)
			 VALUES ($1, $2, $3, $4, $5, 'en') RETURNING id`,
			u.phone, u.name, u.role, avatar, u.location).Scan(&userID)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.name, err)
		}

		_, err = p.db.ExecContext(ctx,
			`INSERT INTO stats (user_id, attendance_rate, hours_worked, tasks_completed)
			 VALUES ($1, 98, 180, 45)`, userID)
		if err != nil {
			return fmt.Errorf("failed to seed stats for %s: %w", u.name, err)
		}
	}

	_, err := p.db.ExecContext(ctx,
		`INSERT INTO tasks (title, time, location, status, priority, supervisor, supervisor_avatar) VALUES
		 ('Brickwork - Wing A', '09:00-13:00', 'Mumbai Site - Floor 4', 'pending', 'heavy', 'Suresh Yadav', 'https://api.dicebear.com/7.x/avataaars/svg?seed=Suresh'),
		 ('Electrical Fitting', '14:00-18:00', 'Pune Complex', 'pending', 'medium', 'Anjali Sharma', 'https://api.dicebear.com/7.x/avataaars/svg?seed=Anjali'),
		 ('Material Unloading', '08:00-09:30', 'Thane Depot', 'completed', 'light', 'Rohit Deshmukh', 'https://api.dicebear.com/7.x/avataaars/svg?seed=Rohit')`)
	if err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}
	return nil
}
