package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/resolver"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

type SaleHandler struct {
	store *store.Store
	audit audit.Recorder
}

func NewSaleHandler(st *store.Store, rec audit.Recorder) *SaleHandler {
	return &SaleHandler{store: st, audit: rec}
}

// A quantity of 0 or an absent one is stored as 1.
type CreateSaleRequest struct {
	ClientID      *uint   `json:"client_id"`
	ProductID     *uint   `json:"product_id"`
	AppointmentID *uint   `json:"appointment_id"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	TotalPrice    float64 `json:"total_price" binding:"min=0"`
	Date          string  `json:"date" binding:"required,ymd"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,oneof=credit debit cash pix"`
	Notes         string  `json:"notes"`
}

func (h *SaleHandler) List(c *gin.Context) {
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	if !wantDetails(c) {
		sales := h.store.ListSales()
		if date != "" {
			filtered := sales[:0]
			for _, s := range sales {
				if s.Date == date {
					filtered = append(filtered, s)
				}
			}
			sales = filtered
		}
		httpresp.OK(c, sales)
		return
	}

	var (
		out []models.SaleWithDetails
		err error
	)
	h.store.View(func(r store.Reader) {
		if date != "" {
			out, err = resolver.SalesByDate(r, date)
			return
		}
		out, err = resolver.ListSalesWithDetails(r)
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !wantDetails(c) {
		s, found := h.store.GetSale(id)
		if !found {
			httperr.NotFound(c, "sale_not_found", "Venda não encontrada.")
			return
		}
		httpresp.OK(c, s)
		return
	}

	var (
		out   models.SaleWithDetails
		found bool
		err   error
	)
	h.store.View(func(r store.Reader) {
		out, found, err = resolver.GetSaleWithDetails(r, id)
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, "sale_not_found", "Venda não encontrada.")
		return
	}
	httpresp.OK(c, out)
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if !bindJSON(c, &req) {
		return
	}

	var refs []reference
	refs = append(refs, refTo(store.EntityClient, req.ClientID)...)
	refs = append(refs, refTo(store.EntityProduct, req.ProductID)...)
	refs = append(refs, refTo(store.EntityAppointment, req.AppointmentID)...)
	if !checkReferences(c, h.store, refs...) {
		return
	}

	s := h.store.CreateSale(models.SaleInput{
		ClientID:      req.ClientID,
		ProductID:     req.ProductID,
		AppointmentID: req.AppointmentID,
		Quantity:      req.Quantity,
		TotalPrice:    req.TotalPrice,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	record(c, h.audit, "create", store.EntitySale, s.ID, nil)
	httpresp.Created(c, s)
}

// Update accepts null for client_id, product_id and appointment_id to
// clear the link.
func (h *SaleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.SalePatch
	if !bindPatch(c, &patch) {
		return
	}

	var refs []reference
	refs = append(refs, refTo(store.EntityClient, patch.ClientID.Value)...)
	refs = append(refs, refTo(store.EntityProduct, patch.ProductID.Value)...)
	refs = append(refs, refTo(store.EntityAppointment, patch.AppointmentID.Value)...)
	if !checkReferences(c, h.store, refs...) {
		return
	}

	s, found := h.store.UpdateSale(id, patch)
	if !found {
		httperr.NotFound(c, "sale_not_found", "Venda não encontrada.")
		return
	}
	record(c, h.audit, "update", store.EntitySale, s.ID, patch)
	httpresp.OK(c, s)
}

func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteSale(id) {
		httperr.NotFound(c, "sale_not_found", "Venda não encontrada.")
		return
	}
	record(c, h.audit, "delete", store.EntitySale, id, nil)
	httpresp.NoContent(c)
}
