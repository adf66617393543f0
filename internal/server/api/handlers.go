// Package api exposes the HTTP surface of the attendance server.
package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"siteproof/internal/server/models"
	"siteproof/internal/server/queue"
	"siteproof/internal/server/storage"
)

// Handlers binds the route handlers to their dependencies. DemoUserID is the
// account all requests act as; there is no per-request authentication.
type Handlers struct {
	Store      storage.Storage
	Queue      queue.Queue
	DemoUserID int
}

// GetMe returns the demo user's profile with stats attached when available.
func (h *Handlers) GetMe(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.Store.GetUser(ctx, h.DemoUserID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	profile := models.UserProfile{User: *user}
	if stats, err := h.Store.GetUserStats(ctx, h.DemoUserID); err == nil {
		profile.Stats = stats
	}

	c.JSON(http.StatusOK, profile)
}

// ListTasks returns all tasks, newest first.
func (h *Handlers) ListTasks(c *gin.Context) {
	tasks, err := h.Store.GetTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// UpdateTaskStatus sets the status of one task.
func (h *Handlers) UpdateTaskStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.Store.UpdateTaskStatus(c.Request.Context(), id, req.Status)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

// MarkAttendance stores one attendance record. The user id from the body is
// replaced with the demo user; the record date defaults to now.
func (h *Handlers) MarkAttendance(c *gin.Context) {
	var entry models.InsertAttendance
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	entry.UserID = h.DemoUserID
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}

	record, err := h.Store.MarkAttendance(c.Request.Context(), entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	attendanceMarked.WithLabelValues(record.Status).Inc()

	if h.Queue != nil {
		msg := queue.Message{Type: "attendance", Body: []byte(strconv.Itoa(record.ID))}
		if err := h.Queue.Publish(c.Request.Context(), msg); err != nil {
			log.Printf("queue publish failed: %v", err)
		}
	}

	c.JSON(http.StatusCreated, record)
}

// AttendanceHistory returns the demo user's records, newest first.
func (h *Handlers) AttendanceHistory(c *gin.Context) {
	history, err := h.Store.GetAttendanceHistory(c.Request.Context(), h.DemoUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if history == nil {
		history = []models.Attendance{}
	}
	c.JSON(http.StatusOK, history)
}
