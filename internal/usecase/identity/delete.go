package identity

import (
	"context"

	"github.com/brightsprout/childcare-api/internal/authz"
	domain "github.com/brightsprout/childcare-api/internal/domain/identity"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

type Delete struct {
	repo domain.Repository
}

func NewDelete(repo domain.Repository) *Delete {
	return &Delete{repo: repo}
}

// Execute removes a user. Admin-only, never the actor's own account,
// and all-or-nothing: if anything still references the user the store
// is left untouched.
func (uc *Delete) Execute(ctx context.Context, actor authz.Actor, userID uint) error {
	if actor.Role != models.RoleAdmin {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if actor.ID == userID {
		return httperr.ErrBusiness(httperr.CodeSelfDeletionDenied)
	}

	return uc.repo.DeleteUser(ctx, userID)
}
