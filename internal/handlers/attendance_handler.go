package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightsprout/childcare-api/internal/authz"
	"github.com/brightsprout/childcare-api/internal/httperr"
	"github.com/brightsprout/childcare-api/internal/httpresp"
	"github.com/brightsprout/childcare-api/internal/models"
)

type AttendanceHandler struct {
	db *gorm.DB
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{db: db}
}

// --------- Requests ---------

type CreateAttendanceRequest struct {
	ChildID  uint   `json:"child_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

type UpdateAttendanceRequest struct {
	ChildID  *uint   `json:"child_id,omitempty"`
	Date     *string `json:"date,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// --------- Handlers ---------

func (h *AttendanceHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionCreate, authz.ResourceAttendance, nil)) {
		return
	}

	var req CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !h.childExists(c, req.ChildID) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil || date == nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	status := req.Status
	if status == "" {
		status = "Present"
	}

	att := models.Attendance{
		ChildID:  req.ChildID,
		Date:     *date,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Status:   status,
	}

	if err := h.db.Create(&att).Error; err != nil {
		httperr.Internal(c, "failed_to_create_attendance", "could not create attendance")
		return
	}

	httpresp.Created(c, att)
}

func (h *AttendanceHandler) List(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	var records []models.Attendance
	if err := h.db.Order("id ASC").Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list_attendance", "could not list attendance")
		return
	}

	httpresp.List(c, records)
}

func (h *AttendanceHandler) Get(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var att models.Attendance
	if err := h.db.First(&att, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "attendance not found")
			return
		}
		httperr.Internal(c, "failed_to_get_attendance", "could not load attendance")
		return
	}

	httpresp.OK(c, att)
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionUpdate, authz.ResourceAttendance, nil)) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var att models.Attendance
	if err := h.db.First(&att, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "attendance not found")
			return
		}
		httperr.Internal(c, "failed_to_get_attendance", "could not load attendance")
		return
	}

	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.ChildID != nil {
		if !h.childExists(c, *req.ChildID) {
			return
		}
		att.ChildID = *req.ChildID
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil || date == nil {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
			return
		}
		att.Date = *date
	}
	if req.CheckIn != nil {
		att.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		att.CheckOut = *req.CheckOut
	}
	if req.Status != nil {
		att.Status = *req.Status
	}

	if err := h.db.Save(&att).Error; err != nil {
		httperr.Internal(c, "failed_to_update_attendance", "could not update attendance")
		return
	}

	httpresp.OK(c, att)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionDelete, authz.ResourceAttendance, nil)) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Attendance{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_attendance", "could not delete attendance")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "attendance not found")
		return
	}

	httpresp.Detail(c, "attendance deleted successfully")
}

func (h *AttendanceHandler) childExists(c *gin.Context, childID uint) bool {
	var child models.Child
	if err := h.db.First(&child, childID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "child not found")
			return false
		}
		httperr.Internal(c, "failed_to_get_child", "could not load child")
		return false
	}
	return true
}
