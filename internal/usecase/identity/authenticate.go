package identity

import (
	"context"
	"errors"

	"github.com/brightsprout/childcare-api/internal/auth"
	domain "github.com/brightsprout/childcare-api/internal/domain/identity"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

// Execute resolves email+password to a user. An unknown email and a
// wrong password produce the identical invalid_credentials error so
// the response never reveals which factor failed.
func (uc *Authenticate) Execute(ctx context.Context, email, password string) (*models.User, error) {
	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	return user, nil
}
