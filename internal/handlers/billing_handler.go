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

type BillingHandler struct {
	db *gorm.DB
}

func NewBillingHandler(db *gorm.DB) *BillingHandler {
	return &BillingHandler{db: db}
}

// --------- Requests ---------

// Amounts travel as integer cents end to end; there is no float in the
// money path.
type CreateBillingRequest struct {
	ChildID     uint   `json:"child_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required"`
	Status      string `json:"status"`
	IssuedDate  string `json:"issued_date"`
	DueDate     string `json:"due_date"`
	Notes       string `json:"notes"`
}

type UpdateBillingRequest struct {
	AmountCents *int64  `json:"amount_cents,omitempty"`
	Status      *string `json:"status,omitempty"`
	IssuedDate  *string `json:"issued_date,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// --------- Handlers ---------

func (h *BillingHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionCreate, authz.ResourceBilling, nil)) {
		return
	}

	var req CreateBillingRequest
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

	issued, err := parseDate(req.IssuedDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "issued_date must be YYYY-MM-DD")
		return
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "due_date must be YYYY-MM-DD")
		return
	}

	status := req.Status
	if status == "" {
		status = "Unpaid"
	}

	billing := models.Billing{
		ChildID:     req.ChildID,
		AmountCents: req.AmountCents,
		Status:      status,
		IssuedDate:  issued,
		DueDate:     due,
		Notes:       req.Notes,
	}

	if err := h.db.Create(&billing).Error; err != nil {
		httperr.Internal(c, "failed_to_create_billing", "could not create billing record")
		return
	}

	httpresp.Created(c, billing)
}

func (h *BillingHandler) List(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	var records []models.Billing
	if err := h.db.Order("id ASC").Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list_billing", "could not list billing records")
		return
	}

	httpresp.List(c, records)
}

func (h *BillingHandler) Get(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var billing models.Billing
	if err := h.db.First(&billing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "billing record not found")
			return
		}
		httperr.Internal(c, "failed_to_get_billing", "could not load billing record")
		return
	}

	httpresp.OK(c, billing)
}

func (h *BillingHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionUpdate, authz.ResourceBilling, nil)) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var billing models.Billing
	if err := h.db.First(&billing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "billing record not found")
			return
		}
		httperr.Internal(c, "failed_to_get_billing", "could not load billing record")
		return
	}

	var req UpdateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.AmountCents != nil {
		billing.AmountCents = *req.AmountCents
	}
	if req.Status != nil {
		billing.Status = *req.Status
	}
	if req.IssuedDate != nil {
		issued, err := parseDate(*req.IssuedDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "issued_date must be YYYY-MM-DD")
			return
		}
		billing.IssuedDate = issued
	}
	if req.DueDate != nil {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "due_date must be YYYY-MM-DD")
			return
		}
		billing.DueDate = due
	}
	if req.Notes != nil {
		billing.Notes = *req.Notes
	}

	if err := h.db.Save(&billing).Error; err != nil {
		httperr.Internal(c, "failed_to_update_billing", "could not update billing record")
		return
	}

	httpresp.OK(c, billing)
}

func (h *BillingHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionDelete, authz.ResourceBilling, nil)) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Billing{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_billing", "could not delete billing record")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "billing record not found")
		return
	}

	httpresp.Detail(c, "billing record deleted successfully")
}
