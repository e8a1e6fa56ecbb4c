package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"airquote/internal/service"
)

// MockSheetSyncService is a mock implementation of service.SheetSyncService.
type MockSheetSyncService struct {
	mock.Mock
}

func (m *MockSheetSyncService) Sync(ctx context.Context, shareURL string) (*service.SyncResult, error) {
	args := m.Called(ctx, shareURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SyncResult), args.Error(1)
}

func (m *MockSheetSyncService) SyncFromPreference(ctx context.Context) (*service.SyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SyncResult), args.Error(1)
}
