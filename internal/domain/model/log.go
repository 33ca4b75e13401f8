package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogEntry is a persisted request or audit event.
// Context-specific data goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID     `json:"id"`
	Timestamp  time.Time              `json:"timestamp"`
	Level      string                 `json:"level"`
	Message    string                 `json:"message"`
	RequestID  string                 `json:"request_id,omitempty"`
	Method     string                 `json:"method,omitempty"`
	Path       string                 `json:"path,omitempty"`
	StatusCode int                    `json:"status_code,omitempty"`
	Duration   int64                  `json:"duration_ms,omitempty"`
	IP         string                 `json:"ip,omitempty"`
	UserAgent  string                 `json:"user_agent,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Action     string                 `json:"action,omitempty"` // calculate_quote, save_quote, export_quote
	QuoteID    string                 `json:"quote_id,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// WithField sets a single context field, allocating Fields on first use.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into the entry.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{}, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// QuoteActivity is the audit trail of one saved quote, newest entry first.
type QuoteActivity struct {
	QuoteNumber string     `json:"quoteNumber" example:"Q-20250128-3F2A9C"`
	Total       int64      `json:"total" example:"3"`
	Entries     []LogEntry `json:"entries"`
}
