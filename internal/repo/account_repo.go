package repo

import (
	"context"

	"github.com/plateful/backend/internal/auth/model"

	"github.com/google/uuid"
)

type AccountRepo interface {
	// CreateAccount inserts the account, lowercasing the email first.
	// Returns ErrAlreadyExists when the normalized email is taken; the
	// uniqueness check is atomic (unique index), not read-then-write.
	CreateAccount(ctx context.Context, a model.Account) (uuid.UUID, error)

	GetAccountByEmail(ctx context.Context, email string) (model.Account, error)

	GetAccountByID(ctx context.Context, id uuid.UUID) (model.Account, error)

	// MarkVerified sets IsVerified and returns the updated account.
	// Idempotent: an already-verified account is returned unchanged.
	MarkVerified(ctx context.Context, id uuid.UUID) (model.Account, error)
}
