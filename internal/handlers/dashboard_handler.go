package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beleza-studio/internal/dashboard"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/dto"
	"github.com/BruksfildServices01/beleza-studio/internal/httpresp"
	"github.com/BruksfildServices01/beleza-studio/internal/logger"
	"github.com/BruksfildServices01/beleza-studio/internal/middleware"
	ucappt "github.com/BruksfildServices01/beleza-studio/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	list    *ucappt.ListAppointments
	stats   *ucappt.SpecialistStats
	confirm *ucappt.ConfirmAppointment
	cancel  *ucappt.CancelAppointment

	source   dashboard.Source
	interval time.Duration
	loc      *time.Location
	log      *zap.Logger
}

type DashboardDeps struct {
	List    *ucappt.ListAppointments
	Stats   *ucappt.SpecialistStats
	Confirm *ucappt.ConfirmAppointment
	Cancel  *ucappt.CancelAppointment

	// Source alimenta o stream; Interval é o período de releitura.
	Source   dashboard.Source
	Interval time.Duration
	Location *time.Location
	Log      *zap.Logger
}

func NewDashboardHandler(d DashboardDeps) *DashboardHandler {
	return &DashboardHandler{
		list:     d.List,
		stats:    d.Stats,
		confirm:  d.Confirm,
		cancel:   d.Cancel,
		source:   d.Source,
		interval: d.Interval,
		loc:      d.Location,
		log:      logger.OrNop(d.Log),
	}
}

type dashboardPayload struct {
	Appointments []dto.AppointmentListDTO `json:"appointments"`
	Summary      dashboard.Summary        `json:"summary"`
}

// ======================================================
// LISTAGEM
// ======================================================

// List: GET /me/appointments?status=&specialist=
func (h *DashboardHandler) List(c *gin.Context) {
	res, err := h.list.Execute(
		c.Request.Context(),
		c.Query("status"),
		c.Query("specialist"),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dashboardPayload{
		Appointments: dto.FromAppointments(res.Appointments, h.loc),
		Summary:      res.Summary,
	})
}

func (h *DashboardHandler) SpecialistStats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, stats)
}

// ======================================================
// STREAM (SSE)
// ======================================================

// Stream reenvia a lista filtrada a cada intervalo até o cliente desconectar.
func (h *DashboardHandler) Stream(c *gin.Context) {
	status, err := domain.ParseStatusFilter(c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	specialist := c.Query("specialist")
	if specialist == "" {
		specialist = domain.FilterAll
	}

	poller := dashboard.NewPoller(h.source, h.interval, dashboard.Filter{
		Status:       status,
		SpecialistID: specialist,
	}, h.log)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	poller.Run(ctx, func(s dashboard.Snapshot) bool {
		if ctx.Err() != nil {
			return false
		}
		c.SSEvent("snapshot", gin.H{
			"appointments": dto.FromAppointments(s.Appointments, h.loc),
			"summary":      s.Summary,
			"at":           s.At,
		})
		c.Writer.Flush()
		return true
	})
}

// ======================================================
// AÇÕES
// ======================================================

func (h *DashboardHandler) Confirm(c *gin.Context) {
	ap, err := h.confirm.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(*ap, h.loc))
}

func (h *DashboardHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(*ap, h.loc))
}
