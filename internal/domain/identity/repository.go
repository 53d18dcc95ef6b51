package identity

import (
	"context"

	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

// ErrUserNotFound is returned by lookups for an absent user.
var ErrUserNotFound = httperr.ErrBusiness(httperr.CodeNotFound)

// Repository is the persistence surface the identity usecases run
// against. The gorm implementation lives in internal/infra/repository;
// tests use an in-memory fake.
type Repository interface {
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// GetUserByEmail matches the email exactly as stored
	// (case-sensitive).
	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// CreateUser inserts the user and surfaces a unique-email
	// violation as the duplicate_email business error, leaving the
	// store unchanged.
	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	SaveUser(
		ctx context.Context,
		user *models.User,
	) error

	ListUsers(
		ctx context.Context,
	) ([]models.User, error)

	// ListStaffUsersWithoutProfile returns role=staff users that do
	// not have a staff profile yet.
	ListStaffUsersWithoutProfile(
		ctx context.Context,
	) ([]models.User, error)

	// EnsureStaffProfile creates an empty staff profile for the user
	// unless one already exists. Idempotent; runs in one transaction.
	EnsureStaffProfile(
		ctx context.Context,
		userID uint,
	) error

	// DeleteUser removes the user inside one transaction, rejecting
	// with referential_conflict while dependent rows still reference
	// it.
	DeleteUser(
		ctx context.Context,
		userID uint,
	) error
}
