package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/plateful/backend/internal/auth/dto"
	customErrors "github.com/plateful/backend/internal/auth/errors"
	"github.com/plateful/backend/internal/auth/model"
	"github.com/plateful/backend/internal/auth/password"
	"github.com/plateful/backend/internal/auth/token"
	"github.com/plateful/backend/internal/repo"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

type authService struct {
	accounts repo.AccountRepo
	codec    *token.Codec
	mailer   Mailer
	v        *validator.Validate
}

func New(accounts repo.AccountRepo, codec *token.Codec, mailer Mailer, v *validator.Validate) Service {
	return &authService{accounts: accounts, codec: codec, mailer: mailer, v: v}
}

func (a *authService) Signup(ctx context.Context, in dto.SignupDTO) (model.Account, error) {
	if err := a.v.Struct(in); err != nil {
		return model.Account{}, customErrors.NewInvalidArgument(err.Error())
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return model.Account{}, customErrors.WrapInternal(err, "Signup")
	}

	acc := model.Account{
		ID:             uuid.New(),
		Email:          strings.ToLower(in.Email),
		PasswordHash:   hash,
		RestaurantName: in.RestaurantName,
		Address:        in.Address,
		PhoneNumber:    in.PhoneNumber,
		IsVerified:     false,
		CreatedAt:      time.Now().UTC(),
	}
	if _, err = a.accounts.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.Account{}, customErrors.ErrAlreadyExists
		}
		return model.Account{}, customErrors.WrapInternal(err, "Signup")
	}

	verifyToken, err := a.codec.Issue(acc.ID, token.PurposeVerify, a.codec.VerifyTTL())
	if err != nil {
		return model.Account{}, customErrors.WrapInternal(err, "IssueVerifyToken")
	}

	// best-effort: the account exists whether or not the email lands
	a.mailer.SendVerification(acc.Email, verifyToken)

	acc.PasswordHash = ""
	return acc, nil
}

func (a *authService) VerifyEmail(ctx context.Context, rawToken string) error {
	claims, err := a.codec.Decode(rawToken)
	if err != nil {
		return err
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return customErrors.ErrInvalidTokenPayload
	}

	if _, err := a.accounts.MarkVerified(ctx, subject); err != nil {
		if errors.Is(err, customErrors.ErrNotFound) {
			return customErrors.ErrNotFound
		}
		return customErrors.WrapInternal(err, "VerifyEmail")
	}
	return nil
}

func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (model.Session, error) {
	if err := a.v.Struct(in); err != nil {
		return model.Session{}, customErrors.NewInvalidArgument(err.Error())
	}

	acc, err := a.accounts.GetAccountByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		// same error as a wrong password: do not reveal which factor failed
		return model.Session{}, customErrors.ErrInvalidCredentials
	case err != nil:
		return model.Session{}, customErrors.WrapInternal(err, "Login")
	}

	if !password.Verify(in.Password, acc.PasswordHash) {
		return model.Session{}, customErrors.ErrInvalidCredentials
	}

	if !acc.IsVerified {
		return model.Session{}, customErrors.ErrEmailNotVerified
	}

	ttl := a.codec.SessionTTL()
	accessToken, err := a.codec.Issue(acc.ID, token.PurposeSession, ttl)
	if err != nil {
		return model.Session{}, customErrors.WrapInternal(err, "IssueSessionToken")
	}

	return model.Session{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   ttl,
		AccountID:   acc.ID,
	}, nil
}

func (a *authService) Authenticate(_ context.Context, authorizationHeader string, preflight bool) (uuid.UUID, error) {
	// CORS preflight carries no credentials and must never be blocked
	if preflight {
		return uuid.Nil, nil
	}

	header := strings.TrimSpace(authorizationHeader)
	if header == "" || header == "Bearer null" {
		return uuid.Nil, customErrors.ErrMissingToken
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return uuid.Nil, customErrors.ErrMissingToken
	}

	claims, err := a.codec.Decode(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return uuid.Nil, err
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, customErrors.ErrInvalidTokenPayload
	}
	return subject, nil
}
