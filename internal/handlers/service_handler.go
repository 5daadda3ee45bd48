package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

type ServiceHandler struct {
	store *store.Store
	audit audit.Recorder
}

func NewServiceHandler(st *store.Store, rec audit.Recorder) *ServiceHandler {
	return &ServiceHandler{store: st, audit: rec}
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"min=0"`
	Price       float64 `json:"price" binding:"min=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	httpresp.OK(c, h.store.ListServices())
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sv, found := h.store.GetService(id)
	if !found {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}
	httpresp.OK(c, sv)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	sv := h.store.CreateService(models.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Status:      req.Status,
	})
	record(c, h.audit, "create", store.EntityService, sv.ID, nil)
	httpresp.Created(c, sv)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.ServicePatch
	if !bindPatch(c, &patch) {
		return
	}

	sv, found := h.store.UpdateService(id, patch)
	if !found {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}
	record(c, h.audit, "update", store.EntityService, sv.ID, patch)
	httpresp.OK(c, sv)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteService(id) {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}
	record(c, h.audit, "delete", store.EntityService, id, nil)
	httpresp.NoContent(c)
}
