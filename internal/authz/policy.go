// Package authz is the single place where role checks live. Every
// mutating or sensitive-read handler asks Authorize before touching
// the database and treats a Deny as the final answer for the request.
package authz

import "github.com/brightsprout/childcare-api/internal/models"

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Resource string

const (
	ResourceUser         Resource = "user"
	ResourceChild        Resource = "child"
	ResourceStaff        Resource = "staff"
	ResourceAttendance   Resource = "attendance"
	ResourceBilling      Resource = "billing"
	ResourceHealthRecord Resource = "health_record"
	ResourceActivity     Resource = "activity"
)

// Actor is the authenticated identity a request runs as, resolved from
// the bearer token by the auth middleware.
type Actor struct {
	ID   uint
	Name string
	Role string
}

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// role sets, by tier
var (
	adminOnly    = []string{models.RoleAdmin}
	adminOrStaff = []string{models.RoleAdmin, models.RoleStaff}
	anyRole      []string // nil means any authenticated identity
)

// policy maps (resource, action) to the roles allowed to perform it.
// Missing entries deny by default.
var policy = map[Resource]map[Action][]string{
	ResourceUser: {
		ActionList:   adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceChild: {
		ActionCreate: adminOrStaff,
		ActionRead:   anyRole,
		ActionList:   anyRole,
		ActionUpdate: adminOrStaff,
		ActionDelete: adminOnly,
	},
	ResourceStaff: {
		ActionCreate: adminOrStaff,
		ActionRead:   anyRole,
		ActionList:   anyRole,
		ActionUpdate: adminOrStaff,
		ActionDelete: adminOnly,
	},
	ResourceAttendance: {
		ActionCreate: adminOrStaff,
		ActionRead:   anyRole,
		ActionList:   anyRole,
		ActionUpdate: adminOrStaff,
		ActionDelete: adminOrStaff,
	},
	ResourceBilling: {
		ActionCreate: adminOrStaff,
		ActionRead:   anyRole,
		ActionList:   anyRole,
		ActionUpdate: adminOrStaff,
		ActionDelete: adminOrStaff,
	},
	ResourceHealthRecord: {
		ActionCreate: adminOrStaff,
		ActionRead:   adminOrStaff,
		ActionList:   adminOrStaff,
		ActionUpdate: adminOrStaff,
		ActionDelete: adminOrStaff,
	},
	ResourceActivity: {
		ActionCreate: adminOrStaff,
		ActionRead:   anyRole,
		ActionList:   anyRole,
		ActionUpdate: adminOrStaff,
		ActionDelete: adminOnly,
	},
}

// Authorize evaluates the policy table for actor. owner is the record
// author for row-scoped resources (health records); pass nil when the
// resource has no per-row owner or the action is not row-scoped.
//
// Health records are the one row-scoped resource: admins see and touch
// everything, staff only rows whose author name equals their own
// display name. Name equality is the stored contract; see the model
// doc for the sharp edge that implies.
func Authorize(actor Actor, action Action, resource Resource, owner *string) Decision {
	actions, ok := policy[resource]
	if !ok {
		return deny("unknown_resource")
	}

	roles, ok := actions[action]
	if !ok {
		return deny("unknown_action")
	}

	if roles != nil && !roleIn(actor.Role, roles) {
		return deny("role_not_allowed")
	}

	if resource == ResourceHealthRecord && owner != nil {
		if actor.Role == models.RoleAdmin {
			return allow()
		}
		if actor.Role == models.RoleStaff && *owner == actor.Name {
			return allow()
		}
		return deny("not_record_owner")
	}

	return allow()
}

func roleIn(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
