package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dklebine/productioncalculator/internal/circuitbreaker"
)

// QuotesRepositoryWithCircuitBreaker guards the quote store with a circuit breaker.
// An open circuit surfaces as circuitbreaker.ErrCircuitOpen.
type QuotesRepositoryWithCircuitBreaker struct {
	repo           QuotesRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewQuotesRepositoryWithCircuitBreaker wraps repo with cb.
func NewQuotesRepositoryWithCircuitBreaker(repo QuotesRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *QuotesRepositoryWithCircuitBreaker {
	return &QuotesRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create inserts a quote. A duplicate number does not count as a backend failure.
func (r *QuotesRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *QuoteDocument) error {
	var dupErr error
	err := r.circuitBreaker.Execute(ctx, func() error {
		err := r.repo.Create(ctx, doc)
		if errors.Is(err, ErrDuplicateQuoteNumber) {
			dupErr = err
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	return dupErr
}

// FindByID looks up a quote by ID.
func (r *QuotesRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*QuoteDocument, error) {
	var result *QuoteDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindByNumber looks up a quote by number.
func (r *QuotesRepositoryWithCircuitBreaker) FindByNumber(ctx context.Context, number string) (*QuoteDocument, error) {
	var result *QuoteDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByNumber(ctx, number)
		return cbErr
	})
	return result, err
}

// List returns recent quotes.
func (r *QuotesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]QuoteDocument, error) {
	var result []QuoteDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// Count returns the number of stored quotes.
func (r *QuotesRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *QuotesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker guards the log store. Writes are dropped
// silently while the circuit is open.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores a single log entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch of log entries.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the number of matching log entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
