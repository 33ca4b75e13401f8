// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dklebine/productioncalculator/internal/repository"
)

type MockQuotesRepositoryInterface struct {
	mock.Mock
}

func (m *MockQuotesRepositoryInterface) Create(ctx context.Context, doc *repository.QuoteDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockQuotesRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*repository.QuoteDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.QuoteDocument), args.Error(1)
}

func (m *MockQuotesRepositoryInterface) FindByNumber(ctx context.Context, number string) (*repository.QuoteDocument, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.QuoteDocument), args.Error(1)
}

func (m *MockQuotesRepositoryInterface) List(ctx context.Context, limit int) ([]repository.QuoteDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuoteDocument), args.Error(1)
}

func (m *MockQuotesRepositoryInterface) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
