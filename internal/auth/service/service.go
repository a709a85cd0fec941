package service

import (
	"context"

	"github.com/plateful/backend/internal/auth/dto"
	"github.com/plateful/backend/internal/auth/model"

	"github.com/google/uuid"
)

// Mailer receives the verification token for a fresh account. Dispatch is
// fire-and-forget from the service's point of view.
type Mailer interface {
	SendVerification(email, token string)
}

type Service interface {
	// Signup creates an unverified account and triggers the verification
	// email. An email-send failure never fails the signup.
	Signup(ctx context.Context, in dto.SignupDTO) (model.Account, error)

	// VerifyEmail consumes a verification token and flips the account to
	// verified. Re-verifying an already-verified account succeeds.
	VerifyEmail(ctx context.Context, rawToken string) error

	// Login checks credentials and issues a session token. Unknown email
	// and wrong password produce the identical error.
	Login(ctx context.Context, in dto.LoginDTO) (model.Session, error)

	// Authenticate resolves the Authorization header into a principal.
	// Preflight requests pass through as anonymous (uuid.Nil, nil error).
	Authenticate(ctx context.Context, authorizationHeader string, preflight bool) (uuid.UUID, error)
}
