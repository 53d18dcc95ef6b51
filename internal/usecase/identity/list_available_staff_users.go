package identity

import (
	"context"

	"github.com/brightsprout/childcare-api/internal/authz"
	domain "github.com/brightsprout/childcare-api/internal/domain/identity"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

// ListAvailableStaffUsers returns the staff-role users that still lack
// a staff profile, for the admin screen that creates profiles by hand.
type ListAvailableStaffUsers struct {
	repo domain.Repository
}

func NewListAvailableStaffUsers(repo domain.Repository) *ListAvailableStaffUsers {
	return &ListAvailableStaffUsers{repo: repo}
}

func (uc *ListAvailableStaffUsers) Execute(ctx context.Context, actor authz.Actor) ([]models.User, error) {
	if d := authz.Authorize(actor, authz.ActionList, authz.ResourceUser, nil); !d.Allowed {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return uc.repo.ListStaffUsersWithoutProfile(ctx)
}
