package identity

import (
	"context"

	"github.com/brightsprout/childcare-api/internal/auth"
	"github.com/brightsprout/childcare-api/internal/authz"
	domain "github.com/brightsprout/childcare-api/internal/domain/identity"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

type AdminResetPassword struct {
	repo domain.Repository
}

func NewAdminResetPassword(repo domain.Repository) *AdminResetPassword {
	return &AdminResetPassword{repo: repo}
}

// Execute replaces the target user's password without an old-password
// check. That bypass is the point of the operation, which is why it is
// gated to admins.
func (uc *AdminResetPassword) Execute(
	ctx context.Context,
	actor authz.Actor,
	userID uint,
	newPassword string,
) (*models.User, error) {

	if actor.Role != models.RoleAdmin {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = hash
	if err := uc.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
