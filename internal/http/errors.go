package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/dklebine/productioncalculator/internal/circuitbreaker"
	"github.com/dklebine/productioncalculator/internal/domain/dto"
	"github.com/dklebine/productioncalculator/internal/i18n"
	"github.com/dklebine/productioncalculator/internal/service"
)

// validationErrors maps pricing sentinels to their response code and message key.
var validationErrors = []struct {
	err        error
	code       string
	messageKey string
}{
	{service.ErrInvalidTier, dto.ErrCodeInvalidTier, i18n.ErrKeyInvalidTier},
	{service.ErrInvalidRateType, dto.ErrCodeInvalidRateType, i18n.ErrKeyInvalidRateType},
	{service.ErrInvalidDeliverySpeed, dto.ErrCodeInvalidDeliverySpeed, i18n.ErrKeyInvalidDeliverySpeed},
	{service.ErrInvalidQuantity, dto.ErrCodeInvalidQuantity, i18n.ErrKeyInvalidQuantity},
}

// writeServiceError translates a service error into the matching error response.
func writeServiceError(b *ResponseBuilder, err error) {
	for _, v := range validationErrors {
		if errors.Is(err, v.err) {
			b.ErrorWithCode(http.StatusBadRequest, v.code, v.messageKey, fieldDetails(err), err)
			return
		}
	}

	var validationErr *dto.ValidationError
	switch {
	case errors.As(err, &validationErr):
		b.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest,
			map[string]string{"field": validationErr.Field, "reason": validationErr.Message}, err)
	case errors.Is(err, service.ErrQuoteNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyQuoteNotFound, err)
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func fieldDetails(err error) map[string]string {
	var fe *service.FieldError
	if !errors.As(err, &fe) {
		return nil
	}
	return map[string]string{"field": fe.Field, "value": fe.Value}
}
