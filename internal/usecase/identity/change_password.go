package identity

import (
	"context"

	"github.com/brightsprout/childcare-api/internal/auth"
	domain "github.com/brightsprout/childcare-api/internal/domain/identity"
	"github.com/brightsprout/childcare-api/internal/httperr"
)

type ChangeOwnPassword struct {
	repo domain.Repository
}

func NewChangeOwnPassword(repo domain.Repository) *ChangeOwnPassword {
	return &ChangeOwnPassword{repo: repo}
}

// Execute rotates the caller's own password after verifying the old
// one against the stored hash.
func (uc *ChangeOwnPassword) Execute(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.VerifyPassword(oldPassword, user.PasswordHash) {
		return httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	return uc.repo.SaveUser(ctx, user)
}
