package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the public catalog endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/resources/count", h.Count)

	cat := rg.Group("/catalog")
	{
		cat.GET("/:kind", h.List)
		cat.GET("/:kind/:id", h.Get)
	}
}
