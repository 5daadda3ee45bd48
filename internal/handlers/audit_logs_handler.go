package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if f.Page <= 0 {
		f.Page = 1
	}

	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	// --------------------------------------------------
	// Optional day range, in shop time
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		if !validators.IsDate(fromStr) {
			httperr.BadRequest(c, "invalid_date", "Data inválida, use AAAA-MM-DD.")
			return
		}
		f.From, _ = time.ParseInLocation(validators.DateLayout, fromStr, h.loc)
	}

	if toStr := c.Query("to"); toStr != "" {
		if !validators.IsDate(toStr) {
			httperr.BadRequest(c, "invalid_date", "Data inválida, use AAAA-MM-DD.")
			return
		}
		to, _ := time.ParseInLocation(validators.DateLayout, toStr, h.loc)
		f.To = to.AddDate(0, 0, 1)
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, logs, f.Page, f.Limit, total)
}
