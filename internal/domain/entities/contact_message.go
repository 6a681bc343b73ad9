package entities

import "time"

// ContactStatus represents the triage lifecycle of a contact message.
// Transitions are forward-only: new -> read -> replied -> closed.

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
	ContactStatusClosed  ContactStatus = "closed"
)

// ContactMessage is a generic inquiry not tied to a product quote.
//
// Storage model (DynamoDB):
//   - PK: reference
type ContactMessage struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`

	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	SourceIP  string `json:"source_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// ContactFilter narrows admin list queries. Zero values mean "no filter".
type ContactFilter struct {
	Status ContactStatus
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

var contactStatusOrder = map[ContactStatus]int{
	ContactStatusNew:     0,
	ContactStatusRead:    1,
	ContactStatusReplied: 2,
	ContactStatusClosed:  3,
}

// CanTransitionTo reports whether a staff status update moves forward.
func (s ContactStatus) CanTransitionTo(next ContactStatus) bool {
	cur, ok := contactStatusOrder[s]
	if !ok {
		return false
	}
	n, ok := contactStatusOrder[next]
	if !ok {
		return false
	}
	return n > cur
}
