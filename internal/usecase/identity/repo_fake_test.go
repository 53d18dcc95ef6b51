package identity

import (
	"context"

	domain "github.com/brightsprout/childcare-api/internal/domain/identity"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository, close
// enough for the usecase rules: unique emails, idempotent profile
// provisioning, restricted deletes.
type fakeRepo struct {
	users    map[uint]*models.User
	profiles []models.Staff
	nextID   uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeRepo) CreateUser(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return httperr.ErrBusiness(httperr.CodeDuplicateEmail)
		}
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeRepo) SaveUser(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, existing := range f.users {
		if id != user.ID && existing.Email == user.Email {
			return httperr.ErrBusiness(httperr.CodeDuplicateEmail)
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeRepo) ListUsers(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeRepo) ListStaffUsersWithoutProfile(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range f.users {
		if user.Role == models.RoleStaff && f.profileCount(user.ID) == 0 {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (f *fakeRepo) EnsureStaffProfile(_ context.Context, userID uint) error {
	if f.profileCount(userID) > 0 {
		return nil
	}
	f.profiles = append(f.profiles, models.Staff{
		ID:     uint(len(f.profiles) + 1),
		UserID: userID,
	})
	return nil
}

func (f *fakeRepo) DeleteUser(_ context.Context, userID uint) error {
	if _, ok := f.users[userID]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if f.profileCount(userID) > 0 {
		return httperr.ErrBusiness(httperr.CodeReferentialConflict)
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeRepo) profileCount(userID uint) int {
	count := 0
	for _, p := range f.profiles {
		if p.UserID == userID {
			count++
		}
	}
	return count
}
