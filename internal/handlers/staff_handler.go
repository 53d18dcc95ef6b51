package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightsprout/childcare-api/internal/authz"
	"github.com/brightsprout/childcare-api/internal/cascade"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/httpresp"
	"github.com/brightsprout/childcare-api/internal/models"
)

type StaffHandler struct {
	db       *gorm.DB
	cascades *cascade.Runner
}

func NewStaffHandler(db *gorm.DB, cascades *cascade.Runner) *StaffHandler {
	return &StaffHandler{db: db, cascades: cascades}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	UserID       uint   `json:"user_id" binding:"required"`
	Contact      string `json:"contact"`
	Position     string `json:"position"`
	AssignedRoom string `json:"assigned_room"`
	HireDate     string `json:"hire_date"`
}

type UpdateStaffRequest struct {
	Contact      *string `json:"contact,omitempty"`
	Position     *string `json:"position,omitempty"`
	AssignedRoom *string `json:"assigned_room,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
}

// --------- Handlers ---------

func (h *StaffHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionCreate, authz.ResourceStaff, nil)) {
		return
	}

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "user not found")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "could not load user")
		return
	}

	// At most one profile per user.
	var count int64
	if err := h.db.Model(&models.Staff{}).
		Where("user_id = ?", req.UserID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_check_profile", "could not check existing profile")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "staff_profile_exists", "staff profile already exists for this user")
		return
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "hire_date must be YYYY-MM-DD")
		return
	}

	staff := models.Staff{
		UserID:       req.UserID,
		Contact:      req.Contact,
		Position:     req.Position,
		AssignedRoom: req.AssignedRoom,
		HireDate:     hireDate,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "could not create staff profile")
		return
	}

	httpresp.Created(c, staff)
}

func (h *StaffHandler) List(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	var staff []models.Staff
	if err := h.db.Preload("User").Order("id ASC").Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "could not list staff")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Get(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var staff models.Staff
	if err := h.db.Preload("User").First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "staff not found")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", "could not load staff")
		return
	}

	httpresp.OK(c, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionUpdate, authz.ResourceStaff, nil)) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var staff models.Staff
	if err := h.db.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "staff not found")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", "could not load staff")
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Contact != nil {
		staff.Contact = *req.Contact
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.AssignedRoom != nil {
		staff.AssignedRoom = *req.AssignedRoom
	}
	if req.HireDate != nil {
		hireDate, err := parseDate(*req.HireDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "hire_date must be YYYY-MM-DD")
			return
		}
		staff.HireDate = hireDate
	}

	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "could not update staff profile")
		return
	}

	httpresp.OK(c, staff)
}

// Delete removes the profile; assigned activities stay and lose their
// assignment in the same transaction.
func (h *StaffHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionDelete, authz.ResourceStaff, nil)) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cascades.DeleteStaff(c.Request.Context(), id); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Detail(c, "staff deleted successfully")
}
