package handlers

import (
	"database/sql"
	"net/http"
	"time"
)

type HealthHandler struct {
	DB        *sql.DB
	StartTime time.Time
}

type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	Database  string `json:"database"`
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		StartTime: time.Now(),
	}
}

// Handle reports liveness plus whether the store answers a ping. A dead
// database degrades the probe to 503 but the flag and timestamp still ship.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	dbStatus := "healthy"
	status := http.StatusOK
	message := "Server is running"

	if err := h.DB.PingContext(r.Context()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
		status = http.StatusServiceUnavailable
		message = "Server is degraded"
	}

	respondJSON(w, status, HealthResponse{
		Success:   status == http.StatusOK,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.StartTime).Round(time.Second).String(),
		Database:  dbStatus,
	})
}
