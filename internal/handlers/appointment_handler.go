package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/resolver"
	"github.com/BruksfildServices01/barberhub/internal/store"
	ucAppointment "github.com/BruksfildServices01/barberhub/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	store *store.Store
	audit audit.Recorder

	update   *ucAppointment.UpdateAppointment
	complete *ucAppointment.CompleteAppointment
	cancel   *ucAppointment.CancelAppointment
}

func NewAppointmentHandler(
	st *store.Store,
	rec audit.Recorder,
	update *ucAppointment.UpdateAppointment,
	complete *ucAppointment.CompleteAppointment,
	cancel *ucAppointment.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:    st,
		audit:    rec,
		update:   update,
		complete: complete,
		cancel:   cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required,ymd"`
	Time      string `json:"time" binding:"required,hhmm"`
	Status    string `json:"status" binding:"omitempty,oneof=scheduled confirmed waiting completed cancelled"`
	Notes     string `json:"notes"`
}

// ======================================================
// LIST / GET
// ======================================================

// List honours ?date=YYYY-MM-DD and ?details=true.
func (h *AppointmentHandler) List(c *gin.Context) {
	date, ok := dateQuery(c)
	if !ok {
		return
	}

	if !wantDetails(c) {
		aps := h.store.ListAppointments()
		if date != "" {
			filtered := aps[:0]
			for _, ap := range aps {
				if ap.Date == date {
					filtered = append(filtered, ap)
				}
			}
			aps = filtered
		}
		httpresp.OK(c, aps)
		return
	}

	var (
		out []models.AppointmentWithDetails
		err error
	)
	h.store.View(func(r store.Reader) {
		if date != "" {
			out, err = resolver.AppointmentsByDate(r, date)
			return
		}
		out, err = resolver.ListAppointmentsWithDetails(r)
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !wantDetails(c) {
		ap, found := h.store.GetAppointment(id)
		if !found {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httpresp.OK(c, ap)
		return
	}

	var (
		out   models.AppointmentWithDetails
		found bool
		err   error
	)
	h.store.View(func(r store.Reader) {
		out, found, err = resolver.GetAppointmentWithDetails(r, id)
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if !checkReferences(c, h.store,
		reference{store.EntityClient, req.ClientID},
		reference{store.EntityBarber, req.BarberID},
		reference{store.EntityService, req.ServiceID},
	) {
		return
	}

	ap := h.store.CreateAppointment(models.AppointmentInput{
		ClientID:  req.ClientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	record(c, h.audit, "create", store.EntityAppointment, ap.ID, nil)
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.AppointmentPatch
	if !bindPatch(c, &patch) {
		return
	}

	var refs []reference
	refs = append(refs, refTo(store.EntityClient, patch.ClientID)...)
	refs = append(refs, refTo(store.EntityBarber, patch.BarberID)...)
	refs = append(refs, refTo(store.EntityService, patch.ServiceID)...)
	if !checkReferences(c, h.store, refs...) {
		return
	}

	ap, err := h.update.Execute(requestContext(c), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteAppointment(id) {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}
	record(c, h.audit, "delete", store.EntityAppointment, id, nil)
	httpresp.NoContent(c)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(requestContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(requestContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, ap)
}
