// Package cascade owns the ownership graph between entities and what a
// parent deletion does to each dependent: delete it, clear the
// reference, or refuse the whole operation. The edges are data, the
// Runner executes them, and every delete runs as one transaction so a
// parent can never end up half-removed.
package cascade

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/models"
)

type Policy int

const (
	// PolicyCascade removes dependent rows together with the parent.
	PolicyCascade Policy = iota
	// PolicySetNull clears the dependent's reference and keeps the row.
	PolicySetNull
	// PolicyRestrict rejects the parent deletion while any dependent
	// row still references it.
	PolicyRestrict
)

// Edge is one dependency of a parent entity: the dependent model, the
// column that references the parent, and the policy applied when the
// parent is deleted.
type Edge struct {
	Child      any
	ForeignKey string
	Policy     Policy
}

// UserEdges: a user deletion is conditional. The staff profile (and
// anything else that might reference the user) blocks it outright;
// the caller must detach dependents first.
var UserEdges = []Edge{
	{Child: &models.Staff{}, ForeignKey: "user_id", Policy: PolicyRestrict},
}

// StaffEdges: activities keep existing when their assigned staff
// profile is removed, only the assignment is cleared.
var StaffEdges = []Edge{
	{Child: &models.Activity{}, ForeignKey: "assigned_staff_id", Policy: PolicySetNull},
}

// ChildEdges: a child owns its whole record cluster; deleting the
// child takes attendance, health records and billing with it.
var ChildEdges = []Edge{
	{Child: &models.Attendance{}, ForeignKey: "child_id", Policy: PolicyCascade},
	{Child: &models.HealthRecord{}, ForeignKey: "child_id", Policy: PolicyCascade},
	{Child: &models.Billing{}, ForeignKey: "child_id", Policy: PolicyCascade},
}

type Runner struct {
	db *gorm.DB
}

func NewRunner(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

func (r *Runner) DeleteUser(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.User{}, id, UserEdges)
}

func (r *Runner) DeleteStaff(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.Staff{}, id, StaffEdges)
}

func (r *Runner) DeleteChild(ctx context.Context, id uint) error {
	return r.delete(ctx, &models.Child{}, id, ChildEdges)
}

func (r *Runner) delete(ctx context.Context, parent any, id uint, edges []Edge) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(parent, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeNotFound)
			}
			return err
		}

		for _, edge := range edges {
			if err := applyEdge(tx, edge, id); err != nil {
				return err
			}
		}

		return tx.Delete(parent, id).Error
	})
}

func applyEdge(tx *gorm.DB, edge Edge, parentID uint) error {
	switch edge.Policy {
	case PolicyRestrict:
		var count int64
		if err := tx.Model(edge.Child).
			Where(edge.ForeignKey+" = ?", parentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeReferentialConflict)
		}
		return nil

	case PolicySetNull:
		return tx.Model(edge.Child).
			Where(edge.ForeignKey+" = ?", parentID).
			Update(edge.ForeignKey, nil).Error

	default: // PolicyCascade
		return tx.Where(edge.ForeignKey+" = ?", parentID).
			Delete(edge.Child).Error
	}
}
