package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/plateful/backend/internal/config"
)

// SMTPSender delivers mail over SMTP with STARTTLS and plain auth.
type SMTPSender struct {
	host     string
	port     int
	sender   string
	password string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		sender:   cfg.SMTPSender,
		password: cfg.SMTPPassword,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.sender, to, subject, body)
	auth := smtp.PlainAuth("", s.sender, s.password, s.host)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	return smtp.SendMail(addr, auth, s.sender, []string{to}, []byte(msg))
}
