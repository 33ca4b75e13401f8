package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dklebine/productioncalculator/internal/domain/model"
)

// ErrDuplicateQuoteNumber is returned when a quote number is already taken.
var ErrDuplicateQuoteNumber = errors.New("quote number already exists")

// QuoteDocument is a stored quote. The request fields are flattened into the document.
type QuoteDocument struct {
	model.QuoteRequest `bson:",inline"`

	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Number    string             `bson:"number"`
	Breakdown []model.LineItem   `bson:"breakdown"`
	TotalCost int64              `bson:"total_cost"`
	RequestID string             `bson:"request_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

// NewQuoteDocument builds a document from a computed quote.
func NewQuoteDocument(number string, req model.QuoteRequest, result model.QuoteResult, requestID string) *QuoteDocument {
	return &QuoteDocument{
		Number:       number,
		QuoteRequest: req,
		Breakdown:    result.Breakdown,
		TotalCost:    result.Total,
		RequestID:    requestID,
	}
}

// ToModel converts the document into a domain record.
func (d *QuoteDocument) ToModel() model.QuoteRecord {
	breakdown := d.Breakdown
	if breakdown == nil {
		breakdown = []model.LineItem{}
	}
	return model.QuoteRecord{
		ID:        d.ID,
		Number:    d.Number,
		Request:   d.QuoteRequest,
		Breakdown: breakdown,
		TotalCost: d.TotalCost,
		RequestID: d.RequestID,
		CreatedAt: d.CreatedAt,
	}
}

// QuotesRepository stores computed quotes.
type QuotesRepository struct {
	collection *mongo.Collection
}

// NewQuotesRepository creates a new quotes repository.
func NewQuotesRepository(db *MongoDB) *QuotesRepository {
	return &QuotesRepository{collection: db.Quotes}
}

// Create inserts a quote, assigning the ID and creation time when unset.
func (r *QuotesRepository) Create(ctx context.Context, doc *QuoteDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateQuoteNumber
	}
	return err
}

// FindByID returns the quote with the given ID, or nil when absent.
func (r *QuotesRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*QuoteDocument, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByNumber returns the quote with the given number, or nil when absent.
func (r *QuotesRepository) FindByNumber(ctx context.Context, number string) (*QuoteDocument, error) {
	return r.findOne(ctx, bson.M{"number": number})
}

func (r *QuotesRepository) findOne(ctx context.Context, filter bson.M) (*QuoteDocument, error) {
	var doc QuoteDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns the most recent quotes first. A non-positive limit returns all of them.
func (r *QuotesRepository) List(ctx context.Context, limit int) ([]QuoteDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []QuoteDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns the number of stored quotes.
func (r *QuotesRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
