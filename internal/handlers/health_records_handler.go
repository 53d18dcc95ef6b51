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

// HealthRecordsHandler is the one resource with row-level ownership on
// top of the role tiers: staff only ever see and touch records they
// authored, matched by display name.
type HealthRecordsHandler struct {
	db *gorm.DB
}

func NewHealthRecordsHandler(db *gorm.DB) *HealthRecordsHandler {
	return &HealthRecordsHandler{db: db}
}

// --------- Requests ---------

type CreateHealthRecordRequest struct {
	ChildID     uint   `json:"child_id" binding:"required"`
	Description string `json:"description" binding:"required"`
	DoctorName  string `json:"doctor_name"`
	RecordDate  string `json:"record_date"`
}

type UpdateHealthRecordRequest struct {
	Description *string `json:"description,omitempty"`
	DoctorName  *string `json:"doctor_name,omitempty"`
	RecordDate  *string `json:"record_date,omitempty"`
}

// --------- Handlers ---------

func (h *HealthRecordsHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionCreate, authz.ResourceHealthRecord, nil)) {
		return
	}

	var req CreateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var child models.Child
	if err := h.db.First(&child, req.ChildID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "child not found")
			return
		}
		httperr.Internal(c, "failed_to_get_child", "could not load child")
		return
	}

	recordDate, err := parseDate(req.RecordDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "record_date must be YYYY-MM-DD")
		return
	}

	doctorName := req.DoctorName
	// Staff authorship is stamped from the session, not the payload.
	if actor.Role == models.RoleStaff {
		doctorName = actor.Name
	}

	record := models.HealthRecord{
		ChildID:     req.ChildID,
		Description: req.Description,
		DoctorName:  doctorName,
		RecordDate:  recordDate,
	}

	if err := h.db.Create(&record).Error; err != nil {
		httperr.Internal(c, "failed_to_create_health_record", "could not create health record")
		return
	}

	httpresp.Created(c, record)
}

func (h *HealthRecordsHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionList, authz.ResourceHealthRecord, nil)) {
		return
	}

	q := h.db.Order("id ASC")
	if actor.Role == models.RoleStaff {
		q = q.Where("doctor_name = ?", actor.Name)
	}

	var records []models.HealthRecord
	if err := q.Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list_health_records", "could not list health records")
		return
	}

	httpresp.List(c, records)
}

func (h *HealthRecordsHandler) Get(c *gin.Context) {
	_, record, ok := h.loadOwned(c, authz.ActionRead)
	if !ok {
		return
	}

	httpresp.OK(c, record)
}

func (h *HealthRecordsHandler) Update(c *gin.Context) {
	_, record, ok := h.loadOwned(c, authz.ActionUpdate)
	if !ok {
		return
	}

	var req UpdateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.DoctorName != nil {
		record.DoctorName = *req.DoctorName
	}
	if req.RecordDate != nil {
		recordDate, err := parseDate(*req.RecordDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "record_date must be YYYY-MM-DD")
			return
		}
		record.RecordDate = recordDate
	}

	if err := h.db.Save(record).Error; err != nil {
		httperr.Internal(c, "failed_to_update_health_record", "could not update health record")
		return
	}

	httpresp.OK(c, record)
}

func (h *HealthRecordsHandler) Delete(c *gin.Context) {
	_, record, ok := h.loadOwned(c, authz.ActionDelete)
	if !ok {
		return
	}

	if err := h.db.Delete(record).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_health_record", "could not delete health record")
		return
	}

	httpresp.Detail(c, "health record deleted successfully")
}

// loadOwned fetches the record and runs the policy check including
// ownership. Role is checked before the load so a denied caller learns
// nothing about which ids exist.
func (h *HealthRecordsHandler) loadOwned(c *gin.Context, action authz.Action) (authz.Actor, *models.HealthRecord, bool) {
	actor, ok := currentActor(c)
	if !ok {
		return authz.Actor{}, nil, false
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, action, authz.ResourceHealthRecord, nil)) {
		return actor, nil, false
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return actor, nil, false
	}

	var record models.HealthRecord
	if err := h.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "health record not found")
			return actor, nil, false
		}
		httperr.Internal(c, "failed_to_get_health_record", "could not load health record")
		return actor, nil, false
	}

	if denyIfNotAllowed(c, authz.Authorize(actor, action, authz.ResourceHealthRecord, &record.DoctorName)) {
		return actor, nil, false
	}

	return actor, &record, true
}
