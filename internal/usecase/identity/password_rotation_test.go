package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsprout/childcare-api/internal/auth"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

func TestChangeOwnPasswordVerifiesOld(t *testing.T) {
	repo := newFakeRepo()
	user := registerUser(t, repo, "me@x.com", "old-pw", models.RoleStaff)

	uc := NewChangeOwnPassword(repo)

	err := uc.Execute(context.Background(), user.ID, "wrong-old", "new-pw")
	require.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials))

	// Hash untouched after the failed attempt.
	stored, getErr := repo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, getErr)
	assert.True(t, auth.VerifyPassword("old-pw", stored.PasswordHash))

	require.NoError(t, uc.Execute(context.Background(), user.ID, "old-pw", "new-pw"))

	stored, getErr = repo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, getErr)
	assert.True(t, auth.VerifyPassword("new-pw", stored.PasswordHash))
	assert.False(t, auth.VerifyPassword("old-pw", stored.PasswordHash))
}

func TestAdminResetSkipsOldPassword(t *testing.T) {
	repo := newFakeRepo()
	admin := registerUser(t, repo, "admin@x.com", "pw", models.RoleAdmin)
	target := registerUser(t, repo, "staff@x.com", "forgotten", models.RoleStaff)

	user, err := NewAdminResetPassword(repo).Execute(
		context.Background(), actorFor(admin), target.ID, "issued-pw")
	require.NoError(t, err)

	assert.True(t, auth.VerifyPassword("issued-pw", user.PasswordHash))
}

func TestAdminResetForbiddenForStaff(t *testing.T) {
	repo := newFakeRepo()
	staff := registerUser(t, repo, "staff@x.com", "pw", models.RoleStaff)
	target := registerUser(t, repo, "victim@x.com", "pw", models.RoleStaff)

	_, err := NewAdminResetPassword(repo).Execute(
		context.Background(), actorFor(staff), target.ID, "owned")
	require.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	stored, getErr := repo.GetUserByID(context.Background(), target.ID)
	require.NoError(t, getErr)
	assert.True(t, auth.VerifyPassword("pw", stored.PasswordHash))
}
