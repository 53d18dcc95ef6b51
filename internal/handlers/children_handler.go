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

type ChildrenHandler struct {
	db       *gorm.DB
	cascades *cascade.Runner
}

func NewChildrenHandler(db *gorm.DB, cascades *cascade.Runner) *ChildrenHandler {
	return &ChildrenHandler{db: db, cascades: cascades}
}

// --------- Requests ---------

type CreateChildRequest struct {
	Name          string `json:"name" binding:"required"`
	DOB           string `json:"dob"`
	Gender        string `json:"gender"`
	ParentName    string `json:"parent_name"`
	ParentContact string `json:"parent_contact"`
	Address       string `json:"address"`
	Allergies     string `json:"allergies"`
	MedicalInfo   string `json:"medical_info"`
}

type UpdateChildRequest struct {
	Name          *string `json:"name,omitempty"`
	DOB           *string `json:"dob,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	ParentName    *string `json:"parent_name,omitempty"`
	ParentContact *string `json:"parent_contact,omitempty"`
	Address       *string `json:"address,omitempty"`
	Allergies     *string `json:"allergies,omitempty"`
	MedicalInfo   *string `json:"medical_info,omitempty"`
}

// --------- Handlers ---------

func (h *ChildrenHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionCreate, authz.ResourceChild, nil)) {
		return
	}

	var req CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "dob must be YYYY-MM-DD")
		return
	}

	child := models.Child{
		Name:          req.Name,
		DOB:           dob,
		Gender:        req.Gender,
		ParentName:    req.ParentName,
		ParentContact: req.ParentContact,
		Address:       req.Address,
		Allergies:     req.Allergies,
		MedicalInfo:   req.MedicalInfo,
	}

	if err := h.db.Create(&child).Error; err != nil {
		httperr.Internal(c, "failed_to_create_child", "could not create child")
		return
	}

	httpresp.Created(c, child)
}

func (h *ChildrenHandler) List(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	var children []models.Child
	if err := h.db.Order("id ASC").Find(&children).Error; err != nil {
		httperr.Internal(c, "failed_to_list_children", "could not list children")
		return
	}

	httpresp.List(c, children)
}

func (h *ChildrenHandler) Get(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var child models.Child
	if err := h.db.First(&child, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "child not found")
			return
		}
		httperr.Internal(c, "failed_to_get_child", "could not load child")
		return
	}

	httpresp.OK(c, child)
}

func (h *ChildrenHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionUpdate, authz.ResourceChild, nil)) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var child models.Child
	if err := h.db.First(&child, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "child not found")
			return
		}
		httperr.Internal(c, "failed_to_get_child", "could not load child")
		return
	}

	var req UpdateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		child.Name = *req.Name
	}
	if req.DOB != nil {
		dob, err := parseDate(*req.DOB)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "dob must be YYYY-MM-DD")
			return
		}
		child.DOB = dob
	}
	if req.Gender != nil {
		child.Gender = *req.Gender
	}
	if req.ParentName != nil {
		child.ParentName = *req.ParentName
	}
	if req.ParentContact != nil {
		child.ParentContact = *req.ParentContact
	}
	if req.Address != nil {
		child.Address = *req.Address
	}
	if req.Allergies != nil {
		child.Allergies = *req.Allergies
	}
	if req.MedicalInfo != nil {
		child.MedicalInfo = *req.MedicalInfo
	}

	if err := h.db.Save(&child).Error; err != nil {
		httperr.Internal(c, "failed_to_update_child", "could not update child")
		return
	}

	httpresp.OK(c, child)
}

// Delete removes the child together with its attendance, health and
// billing rows in one transaction.
func (h *ChildrenHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if denyIfNotAllowed(c, authz.Authorize(actor, authz.ActionDelete, authz.ResourceChild, nil)) {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cascades.DeleteChild(c.Request.Context(), id); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Detail(c, "child deleted successfully")
}
