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

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newFakeRepo()
	uc := NewRegister(repo)

	user, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "Alice Admin",
		Email:    "admin@x.com",
		Password: "pw1",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	assert.NotEqual(t, "pw1", user.PasswordHash)
	assert.True(t, auth.VerifyPassword("pw1", user.PasswordHash))

	// Admins get no staff profile.
	assert.Empty(t, repo.profiles)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	uc := NewRegister(repo)

	_, err := uc.Execute(context.Background(), RegisterInput{
		Name: "First", Email: "dup@x.com", Password: "pw", Role: models.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), RegisterInput{
		Name: "Second", Email: "dup@x.com", Password: "pw", Role: models.RoleAdmin,
	})
	require.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateEmail))

	// Store unchanged: exactly one user with that email.
	assert.Len(t, repo.users, 1)
}

func TestRegisterEmailIsCaseSensitive(t *testing.T) {
	repo := newFakeRepo()
	uc := NewRegister(repo)

	_, err := uc.Execute(context.Background(), RegisterInput{
		Name: "Lower", Email: "case@x.com", Password: "pw", Role: models.RoleAdmin,
	})
	require.NoError(t, err)

	// Different byte sequence, different identity.
	_, err = uc.Execute(context.Background(), RegisterInput{
		Name: "Upper", Email: "Case@x.com", Password: "pw", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Len(t, repo.users, 2)
}

func TestRegisterStaffProvisionsExactlyOneProfile(t *testing.T) {
	repo := newFakeRepo()
	uc := NewRegister(repo)

	user, err := uc.Execute(context.Background(), RegisterInput{
		Name: "Bob Staff", Email: "staff@x.com", Password: "pw2", Role: models.RoleStaff,
	})
	require.NoError(t, err)

	require.Len(t, repo.profiles, 1)
	assert.Equal(t, user.ID, repo.profiles[0].UserID)

	// Running the rule again stays a no-op.
	require.NoError(t, repo.EnsureStaffProfile(context.Background(), user.ID))
	assert.Len(t, repo.profiles, 1)
}

func TestRegisterDefaultsRoleToStaff(t *testing.T) {
	repo := newFakeRepo()
	uc := NewRegister(repo)

	user, err := uc.Execute(context.Background(), RegisterInput{
		Name: "No Role", Email: "norole@x.com", Password: "pw",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleStaff, user.Role)
	assert.Len(t, repo.profiles, 1)
}
