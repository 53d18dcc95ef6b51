package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsprout/childcare-api/internal/auth"
	"github.com/brightsprout/childcare-api/internal/authz"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

func actorFor(user *models.User) authz.Actor {
	return authz.Actor{ID: user.ID, Name: user.Name, Role: user.Role}
}

func strPtr(s string) *string { return &s }

func TestUpdateForbiddenForOtherUsers(t *testing.T) {
	repo := newFakeRepo()
	one := registerUser(t, repo, "one@x.com", "pw", models.RoleStaff)
	two := registerUser(t, repo, "two@x.com", "pw", models.RoleStaff)

	_, err := NewUpdate(repo).Execute(context.Background(), actorFor(one), two.ID, UpdatePatch{
		Name: strPtr("Hijacked"),
	})
	require.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestUpdateSelf(t *testing.T) {
	repo := newFakeRepo()
	user := registerUser(t, repo, "me@x.com", "pw", models.RoleStaff)

	updated, err := NewUpdate(repo).Execute(context.Background(), actorFor(user), user.ID, UpdatePatch{
		Name: strPtr("New Name"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	// Untouched fields stay as they were.
	assert.Equal(t, "me@x.com", updated.Email)
}

func TestUpdateAsAdmin(t *testing.T) {
	repo := newFakeRepo()
	admin := registerUser(t, repo, "admin@x.com", "pw", models.RoleAdmin)
	target := registerUser(t, repo, "target@x.com", "pw", models.RoleStaff)

	updated, err := NewUpdate(repo).Execute(context.Background(), actorFor(admin), target.ID, UpdatePatch{
		Email: strPtr("renamed@x.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed@x.com", updated.Email)
}

func TestUpdateMissingUser(t *testing.T) {
	repo := newFakeRepo()
	admin := registerUser(t, repo, "admin@x.com", "pw", models.RoleAdmin)

	_, err := NewUpdate(repo).Execute(context.Background(), actorFor(admin), 999, UpdatePatch{
		Name: strPtr("Ghost"),
	})
	require.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestUpdatePasswordIsRehashed(t *testing.T) {
	repo := newFakeRepo()
	user := registerUser(t, repo, "me@x.com", "old-pw", models.RoleStaff)

	updated, err := NewUpdate(repo).Execute(context.Background(), actorFor(user), user.ID, UpdatePatch{
		Password: strPtr("new-pw"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "new-pw", updated.PasswordHash)
	assert.True(t, auth.VerifyPassword("new-pw", updated.PasswordHash))
	assert.False(t, auth.VerifyPassword("old-pw", updated.PasswordHash))
}

func TestUpdateRoleToStaffProvisionsOnce(t *testing.T) {
	repo := newFakeRepo()
	admin := registerUser(t, repo, "admin@x.com", "pw", models.RoleAdmin)
	target := registerUser(t, repo, "plain@x.com", "pw", "helper")
	require.Empty(t, repo.profiles)

	uc := NewUpdate(repo)

	_, err := uc.Execute(context.Background(), actorFor(admin), target.ID, UpdatePatch{
		Role: strPtr(models.RoleStaff),
	})
	require.NoError(t, err)
	assert.Len(t, repo.profiles, 1)

	// Setting the role to staff again must not create a second
	// profile.
	_, err = uc.Execute(context.Background(), actorFor(admin), target.ID, UpdatePatch{
		Role: strPtr(models.RoleStaff),
	})
	require.NoError(t, err)
	assert.Len(t, repo.profiles, 1)
}
