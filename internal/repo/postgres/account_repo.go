package postgres

import (
	"context"
	"errors"
	"strings"

	customErrors "github.com/plateful/backend/internal/auth/errors"
	"github.com/plateful/backend/internal/auth/model"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

type AccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) CreateAccount(ctx context.Context, a model.Account) (uuid.UUID, error) {
	a.Email = strings.ToLower(a.Email)
	res := r.db.WithContext(ctx).Create(&a)
	if err := res.Error; err != nil {
		if isDuplicate(err) {
			return uuid.Nil, customErrors.ErrAlreadyExists
		}
		return uuid.Nil, customErrors.WrapInternal(err, "CreateAccount")
	}
	return a.ID, nil
}

func (r *AccountRepo) GetAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	res := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&a)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Account{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Account{}, customErrors.WrapInternal(err, "GetAccountByEmail")
	}
	return a, nil
}

func (r *AccountRepo) GetAccountByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	var a model.Account
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&a)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Account{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Account{}, customErrors.WrapInternal(err, "GetAccountByID")
	}
	return a, nil
}

func (r *AccountRepo) MarkVerified(ctx context.Context, id uuid.UUID) (model.Account, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Update("is_verified", true)
	if err := res.Error; err != nil {
		return model.Account{}, customErrors.WrapInternal(err, "MarkVerified")
	}
	if res.RowsAffected == 0 {
		return model.Account{}, customErrors.ErrNotFound
	}
	return r.GetAccountByID(ctx, id)
}

// isDuplicate recognizes unique-constraint violations from postgres (23505)
// and from gorm's dialect-independent translation, which the sqlite-backed
// tests rely on.
func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
