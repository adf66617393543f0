// Package models defines the server-side API contract types.
package models

import "time"

// User is a site worker account. Username holds the phone number.
type User struct {
	ID                int     `json:"id"`
	Username          string  `json:"username"`
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	Avatar            *string `json:"avatar"`
	Location          *string `json:"location"`
	PreferredLanguage *string `json:"preferredLanguage"`
}

// Task is a scheduled piece of site work.
type Task struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Time             string    `json:"time"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	Priority         string    `json:"priority"`
	Supervisor       *string   `json:"supervisor"`
	SupervisorAvatar *string   `json:"supervisorAvatar"`
	Date             time.Time `json:"date"`
}

// Attendance is one stored attendance record.
type Attendance struct {
	ID       int       `json:"id"`
	UserID   int       `json:"userId"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Location *string   `json:"location"`
	PhotoURL *string   `json:"photoUrl"`
	IsSynced bool      `json:"isSynced"`
}

// InsertAttendance is the accepted POST body for marking attendance. The
// server stamps the user id itself, so UserID from the client is ignored.
type InsertAttendance struct {
	UserID   int       `json:"userId"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status" binding:"required"`
	Location *string   `json:"location"`
	PhotoURL *string   `json:"photoUrl"`
	IsSynced bool      `json:"isSynced"`
}

// UserStats is the aggregate shown on the worker profile.
type UserStats struct {
	ID             int `json:"id"`
	UserID         int `json:"userId"`
	AttendanceRate int `json:"attendanceRate"`
	HoursWorked    int `json:"hoursWorked"`
	TasksCompleted int `json:"tasksCompleted"`
}

// UserProfile is User plus optional stats, the GET /api/users/me response.
type UserProfile struct {
	User
	Stats *UserStats `json:"stats,omitempty"`
}
