package request

import "strings"

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@brightcover.in"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// UpdateQuoteStatusRequest moves a quote request through the follow-up
// pipeline. Notes are optional agent commentary.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required" example:"contacted"`
	Notes  string `json:"notes,omitempty" example:"Customer asked for a callback on Monday"`
}

// UpdateContactStatusRequest moves a contact message through triage.
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required" example:"read"`
}

// NormalizedStatus returns the lowercased trimmed status value.
func (r UpdateQuoteStatusRequest) NormalizedStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}

// NormalizedStatus returns the lowercased trimmed status value.
func (r UpdateContactStatusRequest) NormalizedStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
