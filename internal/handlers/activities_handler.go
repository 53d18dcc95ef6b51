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

type ActivitiesHandler struct {
	db *gorm.DB
}

func NewActivitiesHandler(db *gorm.DB) *ActivitiesHandler {
	return &ActivitiesHandler{db: db}
}

// --------- Requests ---------

type CreateActivityRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	ScheduledDate   string `json:"scheduled_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	AssignedStaffID *uint  `json:"assigned_staff_id"`
}

type UpdateActivityRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	ScheduledDate   *string `json:"scheduled_date,omitempty"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	AssignedStaffID *uint   `json:"assigned_staff_id,omitempty"`
}

// --------- Handlers ---------

func (h *ActivitiesHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionCreate, authz.ResourceActivity, nil)) {
		return
	}

	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.AssignedStaffID != nil && !h.staffExists(c, *req.AssignedStaffID) {
		return
	}

	scheduled, err := parseDate(req.ScheduledDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "scheduled_date must be YYYY-MM-DD")
		return
	}

	activity := models.Activity{
		Title:           req.Title,
		Description:     req.Description,
		ScheduledDate:   scheduled,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		AssignedStaffID: req.AssignedStaffID,
	}

	if err := h.db.Create(&activity).Error; err != nil {
		httperr.Internal(c, "failed_to_create_activity", "could not create activity")
		return
	}

	httpresp.Created(c, activity)
}

func (h *ActivitiesHandler) List(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	var activities []models.Activity
	if err := h.db.Order("id ASC").Find(&activities).Error; err != nil {
		httperr.Internal(c, "failed_to_list_activities", "could not list activities")
		return
	}

	httpresp.List(c, activities)
}

func (h *ActivitiesHandler) Get(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var activity models.Activity
	if err := h.db.First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "activity not found")
			return
		}
		httperr.Internal(c, "failed_to_get_activity", "could not load activity")
		return
	}

	httpresp.OK(c, activity)
}

func (h *ActivitiesHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionUpdate, authz.ResourceActivity, nil)) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var activity models.Activity
	if err := h.db.First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "activity not found")
			return
		}
		httperr.Internal(c, "failed_to_get_activity", "could not load activity")
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.ScheduledDate != nil {
		scheduled, err := parseDate(*req.ScheduledDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "scheduled_date must be YYYY-MM-DD")
			return
		}
		activity.ScheduledDate = scheduled
	}
	if req.StartTime != nil {
		activity.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		activity.EndTime = *req.EndTime
	}
	if req.AssignedStaffID != nil {
		if !h.staffExists(c, *req.AssignedStaffID) {
			return
		}
		activity.AssignedStaffID = req.AssignedStaffID
	}

	if err := h.db.Save(&activity).Error; err != nil {
		httperr.Internal(c, "failed_to_update_activity", "could not update activity")
		return
	}

	httpresp.OK(c, activity)
}

func (h *ActivitiesHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionDelete, authz.ResourceActivity, nil)) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Activity{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_activity", "could not delete activity")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "activity not found")
		return
	}

	httpresp.Detail(c, "activity deleted successfully")
}

func (h *ActivitiesHandler) staffExists(c *gin.Context, staffID uint) bool {
	var staff models.Staff
	if err := h.db.First(&staff, staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "staff not found")
			return false
		}
		httperr.Internal(c, "failed_to_get_staff", "could not load staff")
		return false
	}
	return true
}
