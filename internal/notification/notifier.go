// Package notification turns domain events into customer and sales email.
package notification

import (
	"context"
	"errors"
	"fmt"

	"brightcover/internal/domain/entities"
	"brightcover/internal/infrastructure/mail"
	"brightcover/internal/usecase/interfaces"
)

// MailNotifier sends the customer confirmation and the internal sales alert
// for each submission. Both are attempted even if one fails; delivery
// problems never surface to the customer.
type MailNotifier struct {
	sender     mail.Sender
	salesEmail string
}

var _ interfaces.INotifier = (*MailNotifier)(nil)

func NewMailNotifier(sender mail.Sender, salesEmail string) *MailNotifier {
	return &MailNotifier{sender: sender, salesEmail: salesEmail}
}

func (n *MailNotifier) QuoteSubmitted(ctx context.Context, q entities.QuoteRequest) error {
	confirmErr := n.sender.Send(ctx, mail.Message{
		To:       q.Email,
		Subject:  fmt.Sprintf("Your %s quote %s", productLabel(q.Product), q.Reference),
		HTMLBody: quoteConfirmationHTML(q),
		TextBody: quoteConfirmationText(q),
	})

	alertErr := n.sender.Send(ctx, mail.Message{
		To:       n.salesEmail,
		Subject:  quoteSalesAlertSubject(q),
		TextBody: quoteSalesAlertText(q),
	})

	return errors.Join(confirmErr, alertErr)
}

func (n *MailNotifier) ContactReceived(ctx context.Context, m entities.ContactMessage) error {
	ackErr := n.sender.Send(ctx, mail.Message{
		To:       m.Email,
		Subject:  fmt.Sprintf("We received your message (%s)", m.Reference),
		TextBody: contactAckText(m),
	})

	alertErr := n.sender.Send(ctx, mail.Message{
		To:       n.salesEmail,
		Subject:  fmt.Sprintf("New contact message %s: %s", m.Reference, m.Subject),
		TextBody: contactAlertText(m),
	})

	return errors.Join(ackErr, alertErr)
}
