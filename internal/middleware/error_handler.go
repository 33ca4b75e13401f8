package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dklebine/productioncalculator/internal/domain/dto"
	"github.com/dklebine/productioncalculator/internal/i18n"
	"github.com/dklebine/productioncalculator/internal/logger"
)

// ErrorHandler logs errors attached with c.Error and writes a 500 if the
// handler left the response empty.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := GetRequestID(c)
		l := logger.ForRequest(requestID)
		for _, e := range c.Errors {
			l.Error().
				Err(e.Err).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("request error")
		}

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
