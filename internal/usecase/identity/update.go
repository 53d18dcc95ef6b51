package identity

import (
	"context"

	"github.com/brightsprout/childcare-api/internal/auth"
	"github.com/brightsprout/childcare-api/internal/authz"
	domain "github.com/brightsprout/childcare-api/internal/domain/identity"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

type Update struct {
	repo domain.Repository
}

func NewUpdate(repo domain.Repository) *Update {
	return &Update{repo: repo}
}

// UpdatePatch carries only the fields present in the request; nil
// means "leave as is".
type UpdatePatch struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
}

// Execute applies the patch to the target user. Admins may update
// anyone, everyone else only themselves. A role transition into staff
// provisions the staff profile after the update lands.
func (uc *Update) Execute(
	ctx context.Context,
	actor authz.Actor,
	userID uint,
	patch UpdatePatch,
) (*models.User, error) {

	if actor.Role != models.RoleAdmin && actor.ID != userID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	becameStaff := patch.Role != nil &&
		*patch.Role == models.RoleStaff &&
		user.Role != models.RoleStaff

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := uc.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	if becameStaff {
		if err := uc.repo.EnsureStaffProfile(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	return user, nil
}
