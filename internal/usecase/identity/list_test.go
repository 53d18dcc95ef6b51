package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

func TestListUsersAdminOnly(t *testing.T) {
	repo := newFakeRepo()
	admin := registerUser(t, repo, "admin@x.com", "pw", models.RoleAdmin)
	staff := registerUser(t, repo, "staff@x.com", "pw", models.RoleStaff)

	users, err := NewListUsers(repo).Execute(context.Background(), actorFor(admin))
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = NewListUsers(repo).Execute(context.Background(), actorFor(staff))
	require.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestListAvailableStaffUsers(t *testing.T) {
	repo := newFakeRepo()
	admin := registerUser(t, repo, "admin@x.com", "pw", models.RoleAdmin)

	// Registration provisions a profile, so this user is not
	// "available"; strip the profile to simulate one created before
	// the provisioning rule existed.
	withProfile := registerUser(t, repo, "has@x.com", "pw", models.RoleStaff)
	orphan := registerUser(t, repo, "orphan@x.com", "pw", models.RoleStaff)
	repo.profiles = repo.profiles[:0]
	require.NoError(t, repo.EnsureStaffProfile(context.Background(), withProfile.ID))

	users, err := NewListAvailableStaffUsers(repo).Execute(context.Background(), actorFor(admin))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, orphan.ID, users[0].ID)

	_, err = NewListAvailableStaffUsers(repo).Execute(context.Background(), actorFor(orphan))
	require.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}
