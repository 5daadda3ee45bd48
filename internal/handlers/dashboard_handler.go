package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
	"github.com/BruksfildServices01/barberhub/internal/usecase/analytics"
)

type DashboardHandler struct {
	dashboard *analytics.GetDashboard
	clock     timezone.Clock
}

func NewDashboardHandler(dashboard *analytics.GetDashboard, clock timezone.Clock) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, clock: clock}
}

// Get answers for today or for ?date=YYYY-MM-DD.
func (h *DashboardHandler) Get(c *gin.Context) {
	date, ok := dateQuery(c)
	if !ok {
		return
	}
	if date == "" {
		date = h.clock.Today()
	}

	data, err := h.dashboard.Execute(date)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, data)
}
