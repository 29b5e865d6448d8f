package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/httpresp"
	"github.com/BruksfildServices01/beleza-studio/internal/middleware"
	"github.com/BruksfildServices01/beleza-studio/internal/usecase/staff"
)

type ScheduleHandler struct {
	schedules *staff.Schedules
}

func NewScheduleHandler(schedules *staff.Schedules) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

type ReplaceDayRequest struct {
	Slots []string `json:"slots"`
}

type ToggleSlotRequest struct {
	Slot string `json:"slot" binding:"required"`
}

func parseDay(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return 0, false
	}
	return day, true
}

// Week: GET /me/schedules?specialist=
func (h *ScheduleHandler) Week(c *gin.Context) {
	weeks, err := h.schedules.Week(c.Request.Context(), c.Query("specialist"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, weeks)
}

func (h *ScheduleHandler) ReplaceDay(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}

	var req ReplaceDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	row, err := h.schedules.Replace(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("specialist"),
		day,
		req.Slots,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, row)
}

func (h *ScheduleHandler) ToggleSlot(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}

	var req ToggleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o horário.")
		return
	}

	row, err := h.schedules.Toggle(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("specialist"),
		day,
		req.Slot,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, row)
}
