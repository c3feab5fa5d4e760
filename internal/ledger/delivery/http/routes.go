package http

import (
	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/middleware"
)

// RegisterRoutes maps the per-user progress endpoints. All routes require a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	progress := rg.Group("/progress", mw.Auth())
	{
		progress.GET("/summary", h.Summary)
		progress.GET("/:kind/:id", h.Detail)
		progress.POST("/:kind/:id/toggle", mw.ToggleLimit(), h.Toggle)
		progress.DELETE("/:kind/:id", h.Reset)
	}

	me := rg.Group("/me", mw.Auth())
	{
		me.GET("/current", h.GetCurrent)
		me.PUT("/current", h.SetCurrent)
		me.DELETE("", h.DeleteAll)
	}
}
