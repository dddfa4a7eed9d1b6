package email

import (
	"context"
	"fmt"
	"net/smtp"

	"portfolio-backend/pkg/logger"
)

// Message is a single outbound mail.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer is the outbound mail transport. A nil Mailer means no transport is
// configured and callers must refuse to send rather than drop the message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type smtpMailer struct {
	addr string
	from string
}

// NewSMTPMailer builds a Mailer backed by plain SMTP. Returns nil when host
// is empty so the caller can detect the unconfigured case.
func NewSMTPMailer(host, port, from string) Mailer {
	if host == "" {
		return nil
	}
	return &smtpMailer{
		addr: host + ":" + port,
		from: from,
	}
}

func (s *smtpMailer) Send(ctx context.Context, msg Message) error {
	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", s.from, msg.To, msg.Subject)
	if msg.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo)
	}
	raw := []byte(headers + "\r\n" + msg.Body)

	if err := smtp.SendMail(s.addr, nil, s.from, []string{msg.To}, raw); err != nil {
		logger.Error("failed to send email", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
