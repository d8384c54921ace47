package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/coldtech-agenda/internal/httpresp"
)

// CatalogHandler serves the read-only endpoints: services, stats and
// health.
type CatalogHandler struct {
	agenda Agenda
	env    string
}

func NewCatalogHandler(a Agenda, env string) *CatalogHandler {
	return &CatalogHandler{agenda: a, env: env}
}

func (h *CatalogHandler) Services(c *gin.Context) {
	httpresp.List(c, h.agenda.ListServices(c.Request.Context()))
}

func (h *CatalogHandler) Stats(c *gin.Context) {
	httpresp.OK(c, h.agenda.Stats(c.Request.Context()))
}

// Health answers 200 in both modes; mode tells whether the relational
// store answered at startup.
func (h *CatalogHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"mode":        h.agenda.Mode(),
		"environment": h.env,
	})
}
