package handlers

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint speaks.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListResponse extends the envelope with the paging counters the lead
// listing carries.
type ListResponse struct {
	Success     bool `json:"success"`
	Data        any  `json:"data"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	TotalLeads  int  `json:"totalLeads"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message, errDetail string) {
	respondJSON(w, status, Response{
		Success: false,
		Message: message,
		Error:   errDetail,
	})
}
