package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/coldtech-agenda/internal/dto"
	"github.com/BruksfildServices01/coldtech-agenda/internal/httperr"
	"github.com/BruksfildServices01/coldtech-agenda/internal/httpresp"
	"github.com/BruksfildServices01/coldtech-agenda/internal/models"
)

type ClientHandler struct {
	agenda Agenda
}

func NewClientHandler(a Agenda) *ClientHandler {
	return &ClientHandler{agenda: a}
}

// ======================================================
// LIST CLIENTS
// ======================================================

// List accepts ?query= to match name or contact, case-insensitively.
func (h *ClientHandler) List(c *gin.Context) {
	clients := h.agenda.ListClients(c.Request.Context())

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query == "" {
		httpresp.List(c, clients)
		return
	}

	matched := make([]models.Client, 0, len(clients))
	for _, cl := range clients {
		if strings.Contains(strings.ToLower(cl.Name), query) ||
			strings.Contains(strings.ToLower(cl.Contact), query) {
			matched = append(matched, cl)
		}
	}
	httpresp.List(c, matched)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created := h.agenda.AddClient(c.Request.Context(), req.ToModel())
	if created == nil {
		httperr.Unavailable(c, "client_not_saved", "Não foi possível salvar o cliente.")
		return
	}

	httpresp.Created(c, created)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Empty() {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated := h.agenda.UpdateClient(c.Request.Context(), id, req.ToModel())
	if updated == nil {
		httperr.NotFound(c, "client_not_updated", "Cliente não encontrado ou indisponível.")
		return
	}

	httpresp.OK(c, updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if !h.agenda.DeleteClient(c.Request.Context(), id) {
		httperr.NotFound(c, "client_not_removed", "Cliente não removido.")
		return
	}

	c.Status(http.StatusNoContent)
}
