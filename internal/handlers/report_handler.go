package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
	"github.com/BruksfildServices01/barberhub/internal/usecase/analytics"
	"github.com/BruksfildServices01/barberhub/internal/validators"
)

type ReportHandler struct {
	report *analytics.GetPeriodReport
	clock  timezone.Clock
}

func NewReportHandler(report *analytics.GetPeriodReport, clock timezone.Clock) *ReportHandler {
	return &ReportHandler{report: report, clock: clock}
}

// Get takes ?start=&end= or ?preset=today|week|month. Explicit dates win
// over the preset; with neither the report covers the last week.
func (h *ReportHandler) Get(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")

	if start == "" && end == "" {
		preset := c.DefaultQuery("preset", analytics.PresetWeek)
		var err error
		start, end, err = analytics.PresetRange(preset, h.clock.Now())
		if err != nil {
			httperr.BadRequest(c, "invalid_preset", "Período inválido, use today, week ou month.")
			return
		}
	}

	if !validators.IsDate(start) || !validators.IsDate(end) {
		httperr.BadRequest(c, "invalid_date", "Informe start e end no formato AAAA-MM-DD.")
		return
	}
	if start > end {
		httperr.BadRequest(c, "invalid_range", "start deve ser anterior ou igual a end.")
		return
	}

	data, err := h.report.Execute(start, end)
	if errors.Is(err, analytics.ErrInvalidRange) {
		httperr.BadRequest(c, "invalid_range", "Período máximo de 366 dias.")
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, data)
}
