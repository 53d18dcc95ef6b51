package identity

import (
	"context"

	"github.com/brightsprout/childcare-api/internal/authz"
	domain "github.com/brightsprout/childcare-api/internal/domain/identity"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context, actor authz.Actor) ([]models.User, error) {
	if d := authz.Authorize(actor, authz.ActionList, authz.ResourceUser, nil); !d.Allowed {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return uc.repo.ListUsers(ctx)
}
