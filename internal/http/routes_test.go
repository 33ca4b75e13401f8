//go:build !integration

package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dklebine/productioncalculator/internal/service"
)

func TestQuoteRoutes_RegisterRoutes(t *testing.T) {
	router := gin.New()
	var group RouteGroup = NewQuoteRoutes(NewHandler(service.NewQuoteCalculatorService()))
	group.RegisterRoutes(router.Group("/api"))

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		http.MethodPost + " /api/calculate",
		http.MethodPost + " /api/quotes",
		http.MethodGet + " /api/quotes",
		http.MethodGet + " /api/quotes/:id",
		http.MethodGet + " /api/quotes/:id/activity",
		http.MethodPost + " /api/quotes/export",
		http.MethodGet + " /api/tiers",
		http.MethodGet + " /api/coverage/limits",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, registered, len(expected))
}
