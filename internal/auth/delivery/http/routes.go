package http

import (
	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/middleware"
)

// RegisterRoutes maps the sign-in endpoints. Status, login and callback are public.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/status", h.Status)
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.POST("/logout", mw.Auth(), h.Logout)
	rg.GET("/me", mw.Auth(), h.Me)
}
