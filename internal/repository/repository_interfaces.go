package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuotesRepositoryInterface is the quote history store.
type QuotesRepositoryInterface interface {
	Create(ctx context.Context, doc *QuoteDocument) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*QuoteDocument, error)
	FindByNumber(ctx context.Context, number string) (*QuoteDocument, error)
	List(ctx context.Context, limit int) ([]QuoteDocument, error)
	Count(ctx context.Context) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ QuotesRepositoryInterface = (*QuotesRepository)(nil)
	_ QuotesRepositoryInterface = (*QuotesRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface   = (*LogsRepository)(nil)
	_ LogsRepositoryInterface   = (*LogsRepositoryWithCircuitBreaker)(nil)
)
