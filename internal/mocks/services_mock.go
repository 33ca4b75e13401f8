// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dklebine/productioncalculator/internal/domain/model"
)

type MockQuoteCalculator struct {
	mock.Mock
}

func (m *MockQuoteCalculator) Calculate(ctx context.Context, req model.QuoteRequest) (model.QuoteResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.QuoteResult), args.Error(1)
}

func (m *MockQuoteCalculator) InvalidateCache(ctx context.Context) {
	m.Called(ctx)
}

type MockQuoteHistory struct {
	mock.Mock
}

func (m *MockQuoteHistory) Save(ctx context.Context, req model.QuoteRequest, result model.QuoteResult, requestID string) (*model.QuoteRecord, error) {
	args := m.Called(ctx, req, result, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuoteRecord), args.Error(1)
}

func (m *MockQuoteHistory) Get(ctx context.Context, id string) (*model.QuoteRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuoteRecord), args.Error(1)
}

func (m *MockQuoteHistory) List(ctx context.Context, limit int) ([]model.QuoteRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuoteRecord), args.Error(1)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QuoteActivity(ctx context.Context, quoteNumber string, limit int) (model.QuoteActivity, error) {
	args := m.Called(ctx, quoteNumber, limit)
	return args.Get(0).(model.QuoteActivity), args.Error(1)
}
