package pdfexport

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airquote/internal/domain"
	"airquote/internal/quote"
)

func TestRender(t *testing.T) {
	product := domain.Product{ID: uuid.New(), Name: "RAS-28NK", Price: "36,500"}
	session := quote.NewSession([]domain.Product{product})
	session.CustomerName = "Chen residence"
	session.CustomerAddress = "12 Example Road"
	session.Notes = "Install before end of month."

	session.AddCustomLine()
	require.NoError(t, session.ApplyTemplate(0, "installation fee"))

	r := NewRenderer()
	data, err := r.Render(session, map[uuid.UUID]domain.Product{product.ID: product})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_EmptySession(t *testing.T) {
	r := NewRenderer()
	data, err := r.Render(quote.NewSession(nil), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
