package response

import (
	"time"

	"brightcover/internal/domain/entities"
)

// ContactSubmissionResponse is returned to the customer after the contact
// form is accepted.
type ContactSubmissionResponse struct {
	Success     bool   `json:"success" example:"true"`
	ReferenceID string `json:"reference_id" example:"CM240101120000AB12CD"`
	Status      string `json:"status" example:"new"`
}

// FromContactMessage maps a stored message onto the public response.
func FromContactMessage(m entities.ContactMessage) ContactSubmissionResponse {
	return ContactSubmissionResponse{
		Success:     true,
		ReferenceID: m.Reference,
		Status:      string(m.Status),
	}
}

// ContactDetail is the admin view of a stored contact message.
type ContactDetail struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	SourceIP  string    `json:"source_ip,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
}

// ToContactDetail maps a stored message onto the admin detail view.
func ToContactDetail(m entities.ContactMessage) ContactDetail {
	return ContactDetail{
		ID:        m.ID,
		Reference: m.Reference,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		SourceIP:  m.SourceIP,
		UserAgent: m.UserAgent,
	}
}

// ContactListResponse wraps a page of admin contact results.
type ContactListResponse struct {
	Success  bool            `json:"success" example:"true"`
	Count    int             `json:"count" example:"2"`
	Contacts []ContactDetail `json:"contacts"`
}

// ToContactListResponse maps a page of stored messages onto the list view.
func ToContactListResponse(msgs []entities.ContactMessage) ContactListResponse {
	details := make([]ContactDetail, 0, len(msgs))
	for _, m := range msgs {
		details = append(details, ToContactDetail(m))
	}
	return ContactListResponse{Success: true, Count: len(details), Contacts: details}
}

// ContactDetailResponse wraps a single admin contact result.
type ContactDetailResponse struct {
	Success bool          `json:"success" example:"true"`
	Contact ContactDetail `json:"contact"`
}
