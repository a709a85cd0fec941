// Package mailer builds and dispatches account-verification emails.
// Dispatch is best-effort and asynchronous: a failed send is logged and
// never surfaces to the request that triggered it.
package mailer

import (
	"bytes"
	"fmt"
	"net/url"
	"text/template"

	"go.uber.org/zap"
)

// Sender delivers a single message. SMTPSender is the production
// implementation; tests inject stubs.
type Sender interface {
	Send(to, subject, body string) error
}

const verifySubject = "Please Verify Your Email"

var verifyTemplate = template.Must(template.New("verify").Parse(
	`Click the following link to verify your email: {{.Link}}
`))

type verifyParams struct {
	Link string
}

// VerificationMailer renders verification emails and hands them to a Sender
// on a background goroutine.
type VerificationMailer struct {
	sender  Sender
	baseURL string
	log     *zap.Logger
}

func NewVerificationMailer(sender Sender, baseURL string, log *zap.Logger) *VerificationMailer {
	return &VerificationMailer{sender: sender, baseURL: baseURL, log: log}
}

// SendVerification dispatches the email and returns immediately. At most one
// attempt is made; the result is only logged.
func (m *VerificationMailer) SendVerification(email, token string) {
	body, err := m.renderBody(token)
	if err != nil {
		m.log.Error("render verification email", zap.Error(err))
		return
	}
	go func() {
		if err := m.sender.Send(email, verifySubject, body); err != nil {
			m.log.Warn("verification email not delivered",
				zap.String("to", email),
				zap.Error(err),
			)
			return
		}
		m.log.Info("verification email sent", zap.String("to", email))
	}()
}

func (m *VerificationMailer) renderBody(token string) (string, error) {
	link := fmt.Sprintf("%s/auth/verify?token=%s", m.baseURL, url.QueryEscape(token))
	var buf bytes.Buffer
	if err := verifyTemplate.Execute(&buf, verifyParams{Link: link}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
