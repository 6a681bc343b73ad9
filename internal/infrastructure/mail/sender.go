// Package mail sends transactional email over SMTP.
package mail

import "context"

// Sender delivers one message. Implementations must be safe for concurrent
// use; notifications are dispatched from request-scoped goroutines.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}
