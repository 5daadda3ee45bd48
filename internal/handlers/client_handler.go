package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

type ClientHandler struct {
	store *store.Store
	audit audit.Recorder
}

func NewClientHandler(st *store.Store, rec audit.Recorder) *ClientHandler {
	return &ClientHandler{store: st, audit: rec}
}

// created_at is not accepted: the store stamps it.
type CreateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	Birthdate string `json:"birthdate" binding:"omitempty,ymd"`
	Notes     string `json:"notes"`
}

func (h *ClientHandler) List(c *gin.Context) {
	httpresp.OK(c, h.store.ListClients())
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cl, found := h.store.GetClient(id)
	if !found {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	cl := h.store.CreateClient(models.ClientInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Birthdate: req.Birthdate,
		Notes:     req.Notes,
	})
	record(c, h.audit, "create", store.EntityClient, cl.ID, nil)
	httpresp.Created(c, cl)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.ClientPatch
	if !bindPatch(c, &patch) {
		return
	}

	cl, found := h.store.UpdateClient(id, patch)
	if !found {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}
	record(c, h.audit, "update", store.EntityClient, cl.ID, patch)
	httpresp.OK(c, cl)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteClient(id) {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}
	record(c, h.audit, "delete", store.EntityClient, id, nil)
	httpresp.NoContent(c)
}
