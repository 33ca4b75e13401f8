package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dklebine/productioncalculator/internal/domain/model"
)

// Audited actions.
const (
	ActionCalculateQuote = "calculate_quote"
	ActionSaveQuote      = "save_quote"
	ActionExportQuote    = "export_quote"
)

// AuditSink accepts audit entries without blocking. *AsyncLogger implements it.
type AuditSink interface {
	Log(entry *model.LogEntry) bool
}

// AuditLog records a successful business action of the current request.
func AuditLog(sink AuditSink, c *gin.Context, action, quoteID, message string, fields map[string]interface{}) {
	if isNilSink(sink) {
		return
	}
	entry := auditEntry(c, "info", action, quoteID, message, fields)
	sink.Log(entry)
}

// AuditLogError records a failed business action of the current request.
func AuditLogError(sink AuditSink, c *gin.Context, action, message string, err error, fields map[string]interface{}) {
	if isNilSink(sink) {
		return
	}
	entry := auditEntry(c, "error", action, "", message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}

func auditEntry(c *gin.Context, level, action, quoteID, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Action:    action,
		QuoteID:   quoteID,
		Fields:    fields,
	}
}

// isNilSink also catches a nil *AsyncLogger stored in the interface.
func isNilSink(sink AuditSink) bool {
	if sink == nil {
		return true
	}
	al, ok := sink.(*AsyncLogger)
	return ok && al == nil
}
