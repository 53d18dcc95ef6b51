package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

func TestDeleteForbiddenForNonAdmin(t *testing.T) {
	repo := newFakeRepo()
	staff := registerUser(t, repo, "staff@x.com", "pw", models.RoleStaff)
	other := registerUser(t, repo, "other@x.com", "pw", models.RoleAdmin)

	err := NewDelete(repo).Execute(context.Background(), actorFor(staff), other.ID)
	require.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
	assert.Len(t, repo.users, 2)
}

func TestDeleteSelfDenied(t *testing.T) {
	repo := newFakeRepo()
	admin := registerUser(t, repo, "admin@x.com", "pw", models.RoleAdmin)

	err := NewDelete(repo).Execute(context.Background(), actorFor(admin), admin.ID)
	require.True(t, httperr.IsBusiness(err, httperr.CodeSelfDeletionDenied))
	assert.Len(t, repo.users, 1)
}

func TestDeleteWithProfileIsConflict(t *testing.T) {
	repo := newFakeRepo()
	admin := registerUser(t, repo, "admin@x.com", "pw", models.RoleAdmin)
	staff := registerUser(t, repo, "staff@x.com", "pw", models.RoleStaff)
	require.Len(t, repo.profiles, 1)

	err := NewDelete(repo).Execute(context.Background(), actorFor(admin), staff.ID)
	require.True(t, httperr.IsBusiness(err, httperr.CodeReferentialConflict))

	// All-or-nothing: both the user and the profile survive.
	assert.Contains(t, repo.users, staff.ID)
	assert.Len(t, repo.profiles, 1)
}

func TestDeleteSuccess(t *testing.T) {
	repo := newFakeRepo()
	admin := registerUser(t, repo, "admin@x.com", "pw", models.RoleAdmin)
	target := registerUser(t, repo, "target@x.com", "pw", "helper")

	require.NoError(t, NewDelete(repo).Execute(context.Background(), actorFor(admin), target.ID))
	assert.NotContains(t, repo.users, target.ID)
}

func TestDeleteMissingUser(t *testing.T) {
	repo := newFakeRepo()
	admin := registerUser(t, repo, "admin@x.com", "pw", models.RoleAdmin)

	err := NewDelete(repo).Execute(context.Background(), actorFor(admin), 404)
	require.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}
