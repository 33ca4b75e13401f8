package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/metrics"
	"github.com/dklebine/productioncalculator/internal/repository"
)

var (
	// ErrQuoteNotFound is returned when no stored quote matches the lookup.
	ErrQuoteNotFound = errors.New("quote not found")
	// ErrRepositoryNotConfigured is returned when the history store is disabled.
	ErrRepositoryNotConfigured = errors.New("quote repository not configured")
)

const (
	// DefaultHistoryLimit is used when List is called without a positive limit.
	DefaultHistoryLimit = 20
	// MaxHistoryLimit caps a single List call.
	MaxHistoryLimit = 100

	numberAttempts = 3
)

// QuoteHistory saves computed quotes and reads them back.
type QuoteHistory interface {
	Save(ctx context.Context, req model.QuoteRequest, result model.QuoteResult, requestID string) (*model.QuoteRecord, error)
	Get(ctx context.Context, id string) (*model.QuoteRecord, error)
	List(ctx context.Context, limit int) ([]model.QuoteRecord, error)
}

// QuoteHistoryService stores quotes in the quotes repository.
// A nil repository makes every call fail with ErrRepositoryNotConfigured.
type QuoteHistoryService struct {
	repo  repository.QuotesRepositoryInterface
	now   func() time.Time
	newID func() string
}

// NewQuoteHistoryService creates a history service over repo.
func NewQuoteHistoryService(repo repository.QuotesRepositoryInterface) *QuoteHistoryService {
	return &QuoteHistoryService{
		repo:  repo,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Save stores result under a fresh quote number. A number collision is retried
// with a new number a few times before giving up.
func (s *QuoteHistoryService) Save(ctx context.Context, req model.QuoteRequest, result model.QuoteResult, requestID string) (*model.QuoteRecord, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	var err error
	for attempt := 0; attempt < numberAttempts; attempt++ {
		doc := repository.NewQuoteDocument(s.nextNumber(), req, result.Clone(), requestID)
		doc.CreatedAt = s.now().UTC()

		err = s.repo.Create(ctx, doc)
		if err == nil {
			metrics.RecordQuoteSaved("success")
			log.Info().
				Str("quote_number", doc.Number).
				Int64("total", doc.TotalCost).
				Str("request_id", requestID).
				Msg("quote saved")
			record := doc.ToModel()
			return &record, nil
		}
		if !errors.Is(err, repository.ErrDuplicateQuoteNumber) {
			break
		}
		log.Warn().Str("quote_number", doc.Number).Msg("quote number collision, retrying")
	}

	metrics.RecordQuoteSaved("error")
	return nil, fmt.Errorf("save quote: %w", err)
}

// Get looks a quote up by its ObjectID hex or by its quote number.
func (s *QuoteHistoryService) Get(ctx context.Context, id string) (*model.QuoteRecord, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	var (
		doc *repository.QuoteDocument
		err error
	)
	if oid, parseErr := primitive.ObjectIDFromHex(id); parseErr == nil {
		doc, err = s.repo.FindByID(ctx, oid)
	} else {
		doc, err = s.repo.FindByNumber(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get quote %s: %w", id, err)
	}
	if doc == nil {
		return nil, ErrQuoteNotFound
	}

	record := doc.ToModel()
	return &record, nil
}

// List returns the most recent quotes first.
func (s *QuoteHistoryService) List(ctx context.Context, limit int) ([]model.QuoteRecord, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	docs, err := s.repo.List(ctx, ClampHistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	records := make([]model.QuoteRecord, len(docs))
	for i := range docs {
		records[i] = docs[i].ToModel()
	}
	return records, nil
}

// ClampHistoryLimit maps a requested page size into [1, MaxHistoryLimit].
func ClampHistoryLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	}
	return limit
}

// nextNumber formats Q-YYYYMMDD-XXXXXX from the current date and a random id.
func (s *QuoteHistoryService) nextNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(s.newID(), "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("Q-%s-%s", s.now().UTC().Format("20060102"), suffix)
}
