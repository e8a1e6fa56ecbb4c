package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"airquote/internal/quote"
	"airquote/internal/service"
)

// MockQuoteService is a mock implementation of service.QuoteService.
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) viewOrNil(args mock.Arguments) (*service.SessionView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionView), args.Error(1)
}

func (m *MockQuoteService) Create(ctx context.Context) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(ctx))
}

func (m *MockQuoteService) Get(id uuid.UUID) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id))
}

func (m *MockQuoteService) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuoteService) UpdateDetails(id uuid.UUID, input service.UpdateSessionInput) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, input))
}

func (m *MockQuoteService) SetTitle(id uuid.UUID, title string) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, title))
}

func (m *MockQuoteService) SetCatalogQuantity(id, productID uuid.UUID, quantity int) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, productID, quantity))
}

func (m *MockQuoteService) SetCatalogUnitPrice(id, productID uuid.UUID, text string) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, productID, text))
}

func (m *MockQuoteService) RevertCatalogUnitPrice(id, productID uuid.UUID) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, productID))
}

func (m *MockQuoteService) AddCustomLine(id uuid.UUID) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id))
}

func (m *MockQuoteService) UpdateCustomLine(id uuid.UUID, index int, input service.UpdateCustomLineInput) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, index, input))
}

func (m *MockQuoteService) RemoveCustomLine(id uuid.UUID, index int) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, index))
}

func (m *MockQuoteService) ApplyTemplate(id uuid.UUID, index int, template string) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, index, template))
}

func (m *MockQuoteService) BeginEdit(id uuid.UUID, kind quote.FocusKind, lineID uuid.UUID) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, kind, lineID))
}

func (m *MockQuoteService) CommitEdit(id uuid.UUID, kind quote.FocusKind) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, kind))
}

func (m *MockQuoteService) CancelEdit(id uuid.UUID, kind quote.FocusKind, originalValue string) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, kind, originalValue))
}

func (m *MockQuoteService) BeginTitleEdit(id uuid.UUID) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id))
}

func (m *MockQuoteService) CommitTitleEdit(id uuid.UUID, title string) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id, title))
}

func (m *MockQuoteService) CancelTitleEdit(id uuid.UUID) (*service.SessionView, error) {
	return m.viewOrNil(m.Called(id))
}

func (m *MockQuoteService) Templates() []quote.Template {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]quote.Template)
}

func (m *MockQuoteService) ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
