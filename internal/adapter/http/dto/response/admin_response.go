package response

import "time"

// LoginResponse carries the issued admin bearer token.
type LoginResponse struct {
	Success   bool      `json:"success" example:"true"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"brightcover-api"`
	Version string `json:"version" example:"1.0.0"`
}
