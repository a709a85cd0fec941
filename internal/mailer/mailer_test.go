package mailer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type sentMail struct {
	to, subject, body string
}

type senderStub struct {
	got chan sentMail
	err error
}

func (s *senderStub) Send(to, subject, body string) error {
	s.got <- sentMail{to, subject, body}
	return s.err
}

func TestVerificationMailer_SendsLink(t *testing.T) {
	stub := &senderStub{got: make(chan sentMail, 1)}
	m := NewVerificationMailer(stub, "http://localhost:8080", zap.NewNop())

	m.SendVerification("owner@example.com", "tok/with+specials")

	select {
	case mail := <-stub.got:
		if mail.to != "owner@example.com" {
			t.Fatalf("bad recipient %q", mail.to)
		}
		if mail.subject != verifySubject {
			t.Fatalf("bad subject %q", mail.subject)
		}
		if !strings.Contains(mail.body, "http://localhost:8080/auth/verify?token=tok%2Fwith%2Bspecials") {
			t.Fatalf("body missing escaped link: %q", mail.body)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("email never dispatched")
	}
}

func TestVerificationMailer_FailureIsSilent(t *testing.T) {
	stub := &senderStub{got: make(chan sentMail, 1), err: errors.New("smtp down")}
	m := NewVerificationMailer(stub, "http://localhost:8080", zap.NewNop())

	// must not panic or block the caller
	m.SendVerification("owner@example.com", "tok")

	select {
	case <-stub.got:
	case <-time.After(2 * time.Second):
		t.Fatal("send attempt never made")
	}
}
