package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var attendanceMarked = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "siteproof_attendance_marked_total",
	Help: "Attendance records accepted, labelled by status.",
}, []string{"status"})
