package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"airquote/internal/domain"
	"airquote/internal/quote"
)

// MockQuoteRenderer is a mock implementation of port.QuoteRenderer.
type MockQuoteRenderer struct {
	mock.Mock
}

func (m *MockQuoteRenderer) Render(session *quote.Session, products map[uuid.UUID]domain.Product) ([]byte, error) {
	args := m.Called(session, products)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
