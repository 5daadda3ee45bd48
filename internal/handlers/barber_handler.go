package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

type BarberHandler struct {
	store *store.Store
	audit audit.Recorder
}

func NewBarberHandler(st *store.Store, rec audit.Recorder) *BarberHandler {
	return &BarberHandler{store: st, audit: rec}
}

type CreateBarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	Specialty string `json:"specialty"`
	StartDate string `json:"start_date" binding:"omitempty,ymd"`
	About     string `json:"about"`
	Status    string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r CreateBarberRequest) input() models.BarberInput {
	return models.BarberInput{
		Name:      r.Name,
		Position:  r.Position,
		Phone:     r.Phone,
		Email:     r.Email,
		Specialty: r.Specialty,
		StartDate: r.StartDate,
		About:     r.About,
		Status:    r.Status,
	}
}

func (h *BarberHandler) List(c *gin.Context) {
	httpresp.OK(c, h.store.ListBarbers())
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, found := h.store.GetBarber(id)
	if !found {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}
	httpresp.OK(c, b)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if !bindJSON(c, &req) {
		return
	}

	b := h.store.CreateBarber(req.input())
	record(c, h.audit, "create", store.EntityBarber, b.ID, nil)
	httpresp.Created(c, b)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.BarberPatch
	if !bindPatch(c, &patch) {
		return
	}

	b, found := h.store.UpdateBarber(id, patch)
	if !found {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}
	record(c, h.audit, "update", store.EntityBarber, b.ID, patch)
	httpresp.OK(c, b)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteBarber(id) {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}
	record(c, h.audit, "delete", store.EntityBarber, id, nil)
	httpresp.NoContent(c)
}
