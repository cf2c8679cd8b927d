package mocks

import (
	"context"
	"errors"
	"time"
)

// MockSource is a function-field implementation of source.Source.
type MockSource struct {
	SheetNamesFunc func(ctx context.Context, sourceID string) ([]string, error)
	ValuesFunc     func(ctx context.Context, sourceID, sheet string) ([][]string, error)
}

func (m *MockSource) SheetNames(ctx context.Context, sourceID string) ([]string, error) {
	if m.SheetNamesFunc != nil {
		return m.SheetNamesFunc(ctx, sourceID)
	}
	return nil, nil
}

func (m *MockSource) Values(ctx context.Context, sourceID, sheet string) ([][]string, error) {
	if m.ValuesFunc != nil {
		return m.ValuesFunc(ctx, sourceID, sheet)
	}
	return nil, nil
}

// MockCacher is a mock implementation of the cache interface. Without GetFunc
// every lookup misses.
type MockCacher struct {
	GetFunc   func(ctx context.Context, key string, dest any) error
	SetFunc   func(ctx context.Context, key string, value any, expiration time.Duration) error
	CloseFunc func() error
}

func (m *MockCacher) Get(ctx context.Context, key string, dest any) error {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, dest)
	}
	return errors.New("cache miss")
}

func (m *MockCacher) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	return nil
}

func (m *MockCacher) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
