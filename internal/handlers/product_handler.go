package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

type ProductHandler struct {
	store *store.Store
	audit audit.Recorder
}

func NewProductHandler(st *store.Store, rec audit.Recorder) *ProductHandler {
	return &ProductHandler{store: st, audit: rec}
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	Category    string  `json:"category"`
	Status      string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (h *ProductHandler) List(c *gin.Context) {
	httpresp.OK(c, h.store.ListProducts())
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, found := h.store.GetProduct(id)
	if !found {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	p := h.store.CreateProduct(models.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Status:      req.Status,
	})
	record(c, h.audit, "create", store.EntityProduct, p.ID, nil)
	httpresp.Created(c, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.ProductPatch
	if !bindPatch(c, &patch) {
		return
	}

	p, found := h.store.UpdateProduct(id, patch)
	if !found {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}
	record(c, h.audit, "update", store.EntityProduct, p.ID, patch)
	httpresp.OK(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteProduct(id) {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}
	record(c, h.audit, "delete", store.EntityProduct, id, nil)
	httpresp.NoContent(c)
}
