package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// QuoteRoutes registers the quote and catalog endpoints.
type QuoteRoutes struct {
	handler *Handler
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(handler *Handler) *QuoteRoutes {
	return &QuoteRoutes{handler: handler}
}

// RegisterRoutes registers the quote routes under rg.
func (r *QuoteRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculate", r.handler.Calculate)

	quotes := rg.Group("/quotes")
	quotes.POST("", r.handler.SaveQuote)
	quotes.GET("", r.handler.ListQuotes)
	quotes.POST("/export", r.handler.ExportQuote)
	quotes.GET("/:id", r.handler.GetQuote)
	quotes.GET("/:id/activity", r.handler.QuoteActivity)

	rg.GET("/tiers", r.handler.Tiers)
	rg.GET("/coverage/limits", r.handler.CoverageLimits)
}
