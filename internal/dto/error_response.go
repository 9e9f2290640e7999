package dto

import "time"

type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Products int    `json:"products"`
}
