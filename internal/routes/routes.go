package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/coldtech-agenda/internal/config"
	"github.com/BruksfildServices01/coldtech-agenda/internal/handlers"
	"github.com/BruksfildServices01/coldtech-agenda/internal/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	agenda handlers.Agenda,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(agenda)
	clientHandler := handlers.NewClientHandler(agenda)
	catalogHandler := handlers.NewCatalogHandler(agenda, cfg.Env)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	r.GET("/health", catalogHandler.Health)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments", appointmentHandler.Update)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments", appointmentHandler.Delete)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// CATALOG
		// ------------------------------
		api.GET("/services", catalogHandler.Services)
		api.GET("/stats", catalogHandler.Stats)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
