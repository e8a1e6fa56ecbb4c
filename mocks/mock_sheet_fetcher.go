package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSheetFetcher is a mock implementation of port.SheetFetcher.
type MockSheetFetcher struct {
	mock.Mock
}

func (m *MockSheetFetcher) FetchCSV(ctx context.Context, shareURL string) ([][]string, error) {
	args := m.Called(ctx, shareURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}
