package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brightsprout/childcare-api/internal/cascade"
	domain "github.com/brightsprout/childcare-api/internal/domain/identity"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

type IdentityGormRepository struct {
	db       *gorm.DB
	cascades *cascade.Runner
}

var _ domain.Repository = (*IdentityGormRepository)(nil)

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{
		db:       db,
		cascades: cascade.NewRunner(db),
	}
}

func (r *IdentityGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	// Exact match on purpose: emails are unique as stored, byte for
	// byte.
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness(httperr.CodeDuplicateEmail)
		}
		return err
	}
	return nil
}

func (r *IdentityGormRepository) SaveUser(
	ctx context.Context,
	user *models.User,
) error {

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness(httperr.CodeDuplicateEmail)
		}
		return err
	}
	return nil
}

func (r *IdentityGormRepository) ListUsers(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *IdentityGormRepository) ListStaffUsersWithoutProfile(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleStaff).
		Where("id NOT IN (?)", r.db.Model(&models.Staff{}).Select("user_id")).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// EnsureStaffProfile provisions the 1:1 staff profile for a user. The
// existence check and the insert share one transaction, so invoking
// the rule twice in sequence stays a no-op. Without a unique index on
// staff.user_id two truly concurrent calls could still race; see
// DESIGN.md.
func (r *IdentityGormRepository) EnsureStaffProfile(
	ctx context.Context,
	userID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Staff
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&models.Staff{UserID: userID}).Error
	})
}

func (r *IdentityGormRepository) DeleteUser(
	ctx context.Context,
	userID uint,
) error {
	return r.cascades.DeleteUser(ctx, userID)
}
