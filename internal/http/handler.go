package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dklebine/productioncalculator/internal/domain/dto"
	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/i18n"
	"github.com/dklebine/productioncalculator/internal/middleware"
	"github.com/dklebine/productioncalculator/internal/service"
)

// ExportFilename is the attachment name of an exported quote document.
const ExportFilename = "quote.txt"

// Handler provides HTTP handlers for the quote routes.
type Handler struct {
	calculator service.QuoteCalculator
	history    service.QuoteHistory
	activity   service.LoggingService
	exporter   *service.Exporter
	audit      middleware.AuditSink
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHistory enables the quote history routes. Without it they answer 503.
func WithHistory(history service.QuoteHistory) HandlerOption {
	return func(h *Handler) {
		h.history = history
	}
}

// WithActivity enables the audit trail route of saved quotes.
func WithActivity(logs service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.activity = logs
	}
}

// WithExporter replaces the default document exporter.
func WithExporter(exporter *service.Exporter) HandlerOption {
	return func(h *Handler) {
		if exporter != nil {
			h.exporter = exporter
		}
	}
}

// WithAuditSink sends audit entries for calculate, save and export to sink.
func WithAuditSink(sink middleware.AuditSink) HandlerOption {
	return func(h *Handler) {
		h.audit = sink
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.QuoteCalculator, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator: calculator,
		exporter:   service.NewExporter(""),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// CoverageLimitsResponse reports the reel cap of a video booking and the form ranges.
//
// @Description Derived coverage constraints for the quote form
type CoverageLimitsResponse struct {
	RateType model.RateType     `json:"rateType" example:"fullDay"`
	Hours    int                `json:"hours" example:"8"`
	MaxReels int                `json:"maxReels" example:"17"`
	Limits   service.FormLimits `json:"limits"`
} // @name CoverageLimitsResponse

// Calculate handles POST /api/calculate requests.
//
// @Summary      Calculate a quote
// @Description  Prices a set of photography and videography selections. Returns the total and the ordered breakdown.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculateQuoteRequest true "Service selections"
// @Success      200 {object} dto.SuccessResponse{data=model.QuoteResult} "Computed quote"
// @Failure      400 {object} dto.ErrorResponse "Invalid tier, rate type, delivery speed or quantity"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CalculateQuoteRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	quoteReq := req.ToModel()
	result, err := h.calculator.Calculate(c.Request.Context(), quoteReq)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionCalculateQuote, "", "Quote calculated", map[string]interface{}{
		"tier":  string(quoteReq.ServiceTier),
		"total": result.Total,
		"items": len(result.Breakdown),
	})
	builder.SuccessOK(result)
}

// SaveQuote handles POST /api/quotes requests.
//
// @Summary      Save a quote
// @Description  Prices the selections and stores the result in the quote history under a new quote number.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculateQuoteRequest true "Service selections"
// @Success      201 {object} dto.SuccessResponse{data=model.QuoteRecord} "Stored quote"
// @Failure      400 {object} dto.ErrorResponse "Invalid selections"
// @Failure      503 {object} dto.ErrorResponse "Quote history unavailable"
// @Router       /api/quotes [post]
func (h *Handler) SaveQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CalculateQuoteRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if h.history == nil {
		writeServiceError(builder, service.ErrRepositoryNotConfigured)
		return
	}

	ctx := c.Request.Context()
	quoteReq := req.ToModel()
	result, err := h.calculator.Calculate(ctx, quoteReq)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	record, err := h.history.Save(ctx, quoteReq, result, middleware.GetRequestID(c))
	if err != nil {
		middleware.AuditLogError(h.audit, c, middleware.ActionSaveQuote, "Quote save failed", err, map[string]interface{}{
			"tier":  string(quoteReq.ServiceTier),
			"total": result.Total,
		})
		writeServiceError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionSaveQuote, record.Number, "Quote saved", map[string]interface{}{
		"tier":  string(quoteReq.ServiceTier),
		"total": record.TotalCost,
	})
	c.Header("Location", "/api/quotes/"+record.Number)
	builder.SuccessCreated(record)
}

// ListQuotes handles GET /api/quotes requests.
//
// @Summary      List saved quotes
// @Description  Returns the most recent quotes first.
// @Tags         Quotes
// @Produce      json
// @Param        limit query int false "Maximum number of quotes (default 20, capped at 100)"
// @Success      200 {object} dto.SuccessResponse{data=[]model.QuoteRecord} "Quote history"
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      503 {object} dto.ErrorResponse "Quote history unavailable"
// @Router       /api/quotes [get]
func (h *Handler) ListQuotes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.ListQuotesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidLimit,
			map[string]string{"field": "limit"}, err)
		return
	}
	if h.history == nil {
		writeServiceError(builder, service.ErrRepositoryNotConfigured)
		return
	}

	records, err := h.history.List(c.Request.Context(), query.Limit)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(records)
}

// GetQuote handles GET /api/quotes/:id requests.
//
// @Summary      Get a saved quote
// @Description  Looks a quote up by its id or by its quote number.
// @Tags         Quotes
// @Produce      json
// @Param        id path string true "Quote id or number"
// @Success      200 {object} dto.SuccessResponse{data=model.QuoteRecord} "Stored quote"
// @Failure      404 {object} dto.ErrorResponse "Quote not found"
// @Failure      503 {object} dto.ErrorResponse "Quote history unavailable"
// @Router       /api/quotes/{id} [get]
func (h *Handler) GetQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.history == nil {
		writeServiceError(builder, service.ErrRepositoryNotConfigured)
		return
	}

	record, err := h.history.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(record)
}

// QuoteActivity handles GET /api/quotes/:id/activity requests.
//
// @Summary      Quote audit trail
// @Description  Returns the audit entries recorded for a saved quote, newest first.
// @Tags         Quotes
// @Produce      json
// @Param        id path string true "Quote id or number"
// @Param        limit query int false "Maximum number of entries (default 20, capped at 100)"
// @Success      200 {object} dto.SuccessResponse{data=model.QuoteActivity} "Audit trail"
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      404 {object} dto.ErrorResponse "Quote not found"
// @Failure      503 {object} dto.ErrorResponse "Quote history unavailable"
// @Router       /api/quotes/{id}/activity [get]
func (h *Handler) QuoteActivity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.ListQuotesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidLimit,
			map[string]string{"field": "limit"}, err)
		return
	}
	if h.history == nil || h.activity == nil {
		writeServiceError(builder, service.ErrRepositoryNotConfigured)
		return
	}

	ctx := c.Request.Context()
	record, err := h.history.Get(ctx, c.Param("id"))
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	activity, err := h.activity.QuoteActivity(ctx, record.Number, query.Limit)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(activity)
}

// ExportQuote handles POST /api/quotes/export requests.
//
// @Summary      Export a quote document
// @Description  Renders a computed quote as a plain-text document. When whatYouGet is empty it is derived from formData.
// @Tags         Quotes
// @Accept       json
// @Produce      plain
// @Param        request body dto.ExportQuoteRequest true "Quote to export"
// @Success      200 {string} string "Quote document"
// @Failure      400 {object} dto.ErrorResponse "Inconsistent quote"
// @Router       /api/quotes/export [post]
func (h *Handler) ExportQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ExportQuoteRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			writeServiceError(builder, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	exportReq := service.ExportRequest{Quote: req.Quote, WhatYouGet: req.WhatYouGet}
	if req.FormData != nil {
		exportReq.FormData = *req.FormData
	}

	var buf bytes.Buffer
	if err := h.exporter.Render(&buf, exportReq); err != nil {
		writeServiceError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionExportQuote, "", "Quote exported", map[string]interface{}{
		"total": req.Quote.Total,
	})
	c.Header("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// Tiers handles GET /api/tiers requests.
//
// @Summary      List service tiers
// @Description  Returns every tier with its rates, features, delivery time and support level.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.TierProfile} "Tier catalog"
// @Router       /api/tiers [get]
func (h *Handler) Tiers(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(service.TierCatalog())
}

// CoverageLimits handles GET /api/coverage/limits requests.
//
// @Summary      Coverage limits
// @Description  Returns the number of reels a video booking supports and the ranges of the quote form.
// @Tags         Catalog
// @Produce      json
// @Param        rate_type query string false "hourly, halfDay or fullDay" default(hourly)
// @Param        duration query int false "Hours, for hourly bookings" default(1) minimum(0) maximum(1000000)
// @Param        days query int false "Days, for half and full day bookings" default(1) minimum(0) maximum(1000000)
// @Success      200 {object} dto.SuccessResponse{data=CoverageLimitsResponse} "Coverage limits"
// @Failure      400 {object} dto.ErrorResponse "Invalid rate type or quantity"
// @Router       /api/coverage/limits [get]
func (h *Handler) CoverageLimits(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.CoverageLimitsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidQuantity, i18n.ErrKeyInvalidQuantity, nil, err)
		return
	}

	rateType := query.RateType
	if rateType == "" {
		rateType = model.RateHourly
	}
	if !rateType.Valid() {
		builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidRateType, i18n.ErrKeyInvalidRateType,
			map[string]string{"field": "rate_type", "value": string(rateType)}, nil)
		return
	}

	duration, days := query.Duration, query.Days
	if duration == 0 {
		duration = 1
	}
	if days == 0 {
		days = 1
	}

	hours := service.CoverageHours(rateType, duration, days)
	builder.SuccessOK(CoverageLimitsResponse{
		RateType: rateType,
		Hours:    hours,
		MaxReels: service.MaxReels(hours),
		Limits:   service.DefaultFormLimits(),
	})
}
