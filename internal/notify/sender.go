package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// SMTPSender sends through a plain SMTP relay configured from env.
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPSenderFromEnv returns nil when SMTP_HOST is unset, letting
// the caller fall back to logging.
func NewSMTPSenderFromEnv() *SMTPSender {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = user
	}

	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}

	return &SMTPSender{
		addr: host + ":" + port,
		auth: auth,
		from: from,
	}
}

func (s *SMTPSender) Send(to, subject, html string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, html,
	)
	return smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg))
}

// LogSender is the no-mail-server fallback: it just logs the send.
type LogSender struct{}

func (LogSender) Send(to, subject, _ string) error {
	log.Printf("mail (not sent, no SMTP configured): to=%s subject=%q", to, subject)
	return nil
}
