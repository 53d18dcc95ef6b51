package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightsprout/childcare-api/internal/auth"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/httpresp"
	"github.com/brightsprout/childcare-api/internal/models"
	ucIdentity "github.com/brightsprout/childcare-api/internal/usecase/identity"
	"github.com/brightsprout/childcare-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenService

	register       *ucIdentity.Register
	authenticate   *ucIdentity.Authenticate
	update         *ucIdentity.Update
	changePassword *ucIdentity.ChangeOwnPassword
	adminReset     *ucIdentity.AdminResetPassword
	deleteUser     *ucIdentity.Delete
	listUsers      *ucIdentity.ListUsers
	listAvailable  *ucIdentity.ListAvailableStaffUsers
}

func NewAuthHandler(
	db *gorm.DB,
	tokens *auth.TokenService,
	register *ucIdentity.Register,
	authenticate *ucIdentity.Authenticate,
	update *ucIdentity.Update,
	changePassword *ucIdentity.ChangeOwnPassword,
	adminReset *ucIdentity.AdminResetPassword,
	deleteUser *ucIdentity.Delete,
	listUsers *ucIdentity.ListUsers,
	listAvailable *ucIdentity.ListAvailableStaffUsers,
) *AuthHandler {
	return &AuthHandler{
		db:             db,
		tokens:         tokens,
		register:       register,
		authenticate:   authenticate,
		update:         update,
		changePassword: changePassword,
		adminReset:     adminReset,
		deleteUser:     deleteUser,
		listUsers:      listUsers,
		listAvailable:  listAvailable,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type AdminPasswordResetRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "the email domain does not resolve")
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucIdentity.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.authenticate.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, time.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "could not sign token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, actor.ID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "user not found")
		return
	}

	httpresp.OK(c, user)
}

func (h *AuthHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.update.Execute(c.Request.Context(), actor, userID, ucIdentity.UpdatePatch{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.changePassword.Execute(c.Request.Context(), actor.ID, req.OldPassword, req.NewPassword); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Detail(c, "password updated successfully")
}

func (h *AuthHandler) AdminChangePassword(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdminPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.adminReset.Execute(c.Request.Context(), actor, userID, req.NewPassword)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Detail(c, "password reset for "+user.Email)
}

func (h *AuthHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUser.Execute(c.Request.Context(), actor, userID); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Detail(c, "user deleted successfully")
}

func (h *AuthHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	users, err := h.listUsers.Execute(c.Request.Context(), actor)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, users)
}

func (h *AuthHandler) AvailableStaffUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	users, err := h.listAvailable.Execute(c.Request.Context(), actor)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, users)
}
