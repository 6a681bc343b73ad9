package request

import (
	"fmt"
	"strings"

	"brightcover/internal/domain/entities"
	"brightcover/internal/domain/products"
)

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" example:"Ravi Kumar"`
	Email   string `json:"email" example:"ravi@example.com"`
	Phone   string `json:"phone,omitempty" example:"9876543210"`
	Subject string `json:"subject" example:"policy-question"`
	Message string `json:"message" example:"I would like to understand the waiting period on my policy."`
}

// Normalize validates the payload and maps it onto the domain entity,
// collecting every field problem.
func (r ContactRequest) Normalize() (entities.ContactMessage, []string) {
	var errs []string

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.ToLower(strings.TrimSpace(r.Subject))
	r.Message = strings.TrimSpace(r.Message)

	if !validName(r.Name) {
		errs = append(errs, "name must be at least 2 characters")
	}
	if !validEmail(r.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	if r.Phone != "" && !validPhone(r.Phone) {
		errs = append(errs, "phone must contain 10 to 15 digits")
	}
	if !products.ValidContactSubject(r.Subject) {
		errs = append(errs, fmt.Sprintf("subject must be one of: %s", strings.Join(products.ContactSubjects, ", ")))
	}
	if len(r.Message) < 10 || len(r.Message) > 2000 {
		errs = append(errs, "message must be between 10 and 2000 characters")
	}

	if len(errs) > 0 {
		return entities.ContactMessage{}, errs
	}

	return entities.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}, nil
}
