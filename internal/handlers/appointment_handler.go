package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/coldtech-agenda/internal/dto"
	"github.com/BruksfildServices01/coldtech-agenda/internal/httperr"
	"github.com/BruksfildServices01/coldtech-agenda/internal/httpresp"
	"github.com/BruksfildServices01/coldtech-agenda/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	agenda Agenda
}

func NewAppointmentHandler(a Agenda) *AppointmentHandler {
	return &AppointmentHandler{agenda: a}
}

// ======================================================
// LIST
// ======================================================

// List serves GET /api/appointments. ?date= lists one day by time,
// ?status= lists pending or completed by date, neither lists everything.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	date := c.Query("date")
	status := domain.Status(c.Query("status"))

	switch {
	case date != "":
		if _, err := timezone.ParseDate(date); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httpresp.List(c, h.agenda.ListAppointmentsByDate(ctx, date))

	case status == domain.StatusPending:
		httpresp.List(c, h.agenda.ListPending(ctx))

	case status == domain.StatusCompleted:
		httpresp.List(c, h.agenda.ListCompleted(ctx))

	case status != "":
		httperr.BadRequest(c, "invalid_status", "Status inválido.")

	default:
		httpresp.List(c, h.agenda.ListAppointments(ctx))
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.agenda.AddAppointment(c.Request.Context(), req.ToView())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// UPDATE
// ======================================================

// Update serves PUT /api/appointments[/:id][?index=]. The id comes from
// the path or the body.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}
	index, err := queryIndex(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_index", "Índice inválido.")
		return
	}

	var req dto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if id != 0 {
		req.ID = id
	}

	updated, err := h.agenda.UpdateAppointment(c.Request.Context(), index, req.ToView())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}
	index, err := queryIndex(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_index", "Índice inválido.")
		return
	}

	removed, err := h.agenda.DeleteAppointment(c.Request.Context(), index, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if removed == nil {
		httperr.NotFound(c, "appointment_not_removed", "Agendamento não removido.")
		return
	}

	httpresp.OK(c, removed)
}
