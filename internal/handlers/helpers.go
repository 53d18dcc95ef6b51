package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightsprout/childcare-api/internal/authz"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/middleware"
)

// currentActor rebuilds the authenticated actor from the context keys
// the auth middleware set. A missing actor means the route was wired
// without the middleware.
func currentActor(c *gin.Context) (authz.Actor, bool) {
	idVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return authz.Actor{}, false
	}

	id, ok := idVal.(uint)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return authz.Actor{}, false
	}

	name, _ := c.Get(middleware.ContextUserName)
	role, _ := c.Get(middleware.ContextUserRole)

	actor := authz.Actor{ID: id}
	actor.Name, _ = name.(string)
	actor.Role, _ = role.(string)
	return actor, true
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "path id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts "2006-01-02"; empty input yields nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// writeBusinessError maps a usecase failure onto the HTTP surface.
// Anything that is not a business error is a plain 500.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	switch code {
	case httperr.CodeInvalidCredentials, httperr.CodeInvalidToken:
		httperr.Unauthorized(c, code, "invalid credentials")
	case httperr.CodeForbidden:
		httperr.Forbidden(c, code, "not enough permissions")
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, "resource not found")
	case httperr.CodeDuplicateEmail:
		httperr.BadRequest(c, code, "email already registered")
	case httperr.CodeSelfDeletionDenied:
		httperr.BadRequest(c, code, "you cannot delete your own account")
	case httperr.CodeReferentialConflict:
		httperr.BadRequest(c, code, "record is still referenced by other data")
	case "":
		httperr.Internal(c, "internal_error", "internal error")
	default:
		httperr.BadRequest(c, code, code)
	}
}

// denyIfNotAllowed writes the 403 for a policy denial and reports
// whether the caller should stop.
func denyIfNotAllowed(c *gin.Context, d authz.Decision) bool {
	if d.Allowed {
		return false
	}
	httperr.Forbidden(c, httperr.CodeForbidden, "not enough permissions")
	return true
}
