package identity

import (
	"context"
	"errors"

	"github.com/brightsprout/childcare-api/internal/auth"
	domain "github.com/brightsprout/childcare-api/internal/domain/identity"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

type Register struct {
	repo domain.Repository
}

func NewRegister(repo domain.Repository) *Register {
	return &Register{repo: repo}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := uc.repo.GetUserByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateEmail)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleStaff
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}

	// The unique index on email backs up the lookup above if a
	// concurrent registration slips in between.
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if user.Role == models.RoleStaff {
		if err := uc.repo.EnsureStaffProfile(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	return user, nil
}
