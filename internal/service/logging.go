package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/repository"
)

// LoggingService persists request and audit log entries and reads back
// the audit trail of saved quotes.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	QuoteActivity(ctx context.Context, quoteNumber string, limit int) (model.QuoteActivity, error)
}

// LoggingServiceImpl stores log entries through a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a logging service backed by repo.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLog stores one entry, assigning its ID and timestamp when unset.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.repo.Create(ctx, newLogDocument(entry))
}

// CreateLogs stores a batch of entries in a single write.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]*repository.LogEntryDocument, 0, len(entries))
	for _, entry := range entries {
		docs = append(docs, newLogDocument(entry))
	}
	return s.repo.CreateMany(ctx, docs)
}

// QuoteActivity returns up to limit audit entries recorded for quoteNumber,
// plus the total number of entries. limit is clamped like the history listing.
func (s *LoggingServiceImpl) QuoteActivity(ctx context.Context, quoteNumber string, limit int) (model.QuoteActivity, error) {
	opts := repository.LogQueryOptions{QuoteID: quoteNumber, Limit: ClampHistoryLimit(limit)}

	docs, err := s.repo.Query(ctx, opts)
	if err != nil {
		return model.QuoteActivity{}, fmt.Errorf("query activity of %s: %w", quoteNumber, err)
	}
	total, err := s.repo.Count(ctx, opts)
	if err != nil {
		return model.QuoteActivity{}, fmt.Errorf("count activity of %s: %w", quoteNumber, err)
	}

	activity := model.QuoteActivity{
		QuoteNumber: quoteNumber,
		Total:       total,
		Entries:     make([]model.LogEntry, 0, len(docs)),
	}
	for _, doc := range docs {
		activity.Entries = append(activity.Entries, logEntryFromDocument(doc))
	}
	return activity, nil
}

func newLogDocument(entry *model.LogEntry) *repository.LogEntryDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	doc := repository.LogEntryDocument(*entry)
	return &doc
}

func logEntryFromDocument(doc *repository.LogEntryDocument) model.LogEntry {
	return model.LogEntry(*doc)
}
