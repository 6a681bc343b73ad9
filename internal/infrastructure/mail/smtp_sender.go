package mail

import (
	"context"
	"fmt"
	"log"
	"net/smtp"

	"brightcover/internal/config"
)

// SMTPSender sends multipart text+HTML mail through a plain-auth SMTP relay.
// When mail is disabled it logs the message instead, which is how local
// development runs.
type SMTPSender struct {
	cfg config.MailConfig
}

var _ Sender = (*SMTPSender)(nil)

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if !s.cfg.Enabled {
		log.Printf("[mail] disabled, would send to=%s subject=%q", msg.To, msg.Subject)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{msg.To}, s.buildMessage(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildMessage assembles a multipart/alternative body so clients without
// HTML rendering still get the plain-text part.
func (s *SMTPSender) buildMessage(msg Message) []byte {
	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	const boundary = "----=_NextPart_brightcover"

	body := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", msg.To) +
		fmt.Sprintf("Subject: %s\r\n", msg.Subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n" +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		msg.TextBody + "\r\n"

	if msg.HTMLBody != "" {
		body += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			msg.HTMLBody + "\r\n"
	}

	body += fmt.Sprintf("--%s--\r\n", boundary)
	return []byte(body)
}
