package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/middleware"
	"github.com/BruksfildServices01/barberhub/internal/store"
	"github.com/BruksfildServices01/barberhub/internal/validators"
)

// ======================================================
// REQUEST HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

func wantDetails(c *gin.Context) bool {
	return strings.EqualFold(c.Query("details"), "true")
}

// dateQuery reads ?date=. An absent value is ok with date == "".
func dateQuery(c *gin.Context) (string, bool) {
	date := c.Query("date")
	if date != "" && !validators.IsDate(date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use AAAA-MM-DD.")
		return "", false
	}
	return date, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return false
	}
	return true
}

// bindPatch accepts an empty body as an empty patch.
func bindPatch(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return false
	}
	return true
}

func requestContext(c *gin.Context) context.Context {
	return audit.WithRequestID(c.Request.Context(), middleware.GetRequestID(c))
}

// ======================================================
// REFERENCES
// ======================================================

type reference struct {
	entity string
	id     uint
}

func refTo(entity string, id *uint) []reference {
	if id == nil {
		return nil
	}
	return []reference{{entity: entity, id: *id}}
}

// checkReferences rejects input pointing at records that do not exist.
func checkReferences(c *gin.Context, st *store.Store, refs ...reference) bool {
	var missing *reference
	st.View(func(r store.Reader) {
		for i, ref := range refs {
			if !exists(r, ref) {
				missing = &refs[i]
				return
			}
		}
	})
	if missing != nil {
		httperr.BadRequest(c, "invalid_reference",
			fmt.Sprintf("Referência inexistente: %s %d.", missing.entity, missing.id))
		return false
	}
	return true
}

func exists(r store.Reader, ref reference) bool {
	var ok bool
	switch ref.entity {
	case store.EntityBarber:
		_, ok = r.GetBarber(ref.id)
	case store.EntityService:
		_, ok = r.GetService(ref.id)
	case store.EntityClient:
		_, ok = r.GetClient(ref.id)
	case store.EntityAppointment:
		_, ok = r.GetAppointment(ref.id)
	case store.EntityProduct:
		_, ok = r.GetProduct(ref.id)
	case store.EntitySale:
		_, ok = r.GetSale(ref.id)
	}
	return ok
}

// ======================================================
// ERRORS
// ======================================================

// writeError maps use case and resolver errors onto the JSON error shape.
func writeError(c *gin.Context, err error) {
	var dangling *store.DanglingReferenceError
	var business httperr.BusinessError

	switch {
	case errors.As(err, &dangling):
		httperr.Conflict(c, "dangling_reference", err.Error())
	case errors.Is(err, store.ErrDuplicateID):
		httperr.BadRequest(c, "duplicate_id", err.Error())
	case errors.As(err, &business):
		if strings.HasSuffix(business.Code, "_not_found") {
			httperr.NotFound(c, business.Code, "Registro não encontrado.")
			return
		}
		httperr.BadRequest(c, business.Code, "Operação não permitida no estado atual.")
	default:
		_ = c.Error(err)
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

// ======================================================
// AUDIT
// ======================================================

func record(c *gin.Context, rec audit.Recorder, action, entity string, id uint, meta any) {
	rec.Dispatch(audit.Event{
		RequestID: middleware.GetRequestID(c),
		Action:    action,
		Entity:    entity,
		EntityID:  &id,
		Metadata:  meta,
	})
}
