package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"airquote/internal/domain"
	"airquote/internal/handler"
	"airquote/internal/quote"
	"airquote/internal/service"
	"airquote/mocks"
)

func emptySessionView() *service.SessionView {
	return &service.SessionView{Session: quote.NewSession(nil)}
}

func TestQuoteHandler_Create_Success(t *testing.T) {
	mockSvc := new(mocks.MockQuoteService)
	h := handler.NewQuoteHandler(mockSvc)

	mockSvc.On("Create", mock.Anything).Return(emptySessionView(), nil)

	c, w := testContext(http.MethodPost, "/api/v1/quotes", "")
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestQuoteHandler_Create_NoPinnedProducts(t *testing.T) {
	mockSvc := new(mocks.MockQuoteService)
	h := handler.NewQuoteHandler(mockSvc)

	mockSvc.On("Create", mock.Anything).Return(nil, domain.ErrNoPinnedProducts)

	c, w := testContext(http.MethodPost, "/api/v1/quotes", "")
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
}

func TestQuoteHandler_Get_SessionNotFound(t *testing.T) {
	mockSvc := new(mocks.MockQuoteService)
	h := handler.NewQuoteHandler(mockSvc)

	id := uuid.New()
	mockSvc.On("Get", id).Return(nil, domain.ErrSessionNotFound)

	c, w := testContext(http.MethodGet, "/api/v1/quotes/"+id.String(), "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)
}

func TestQuoteHandler_SetCatalogLine_Quantity(t *testing.T) {
	mockSvc := new(mocks.MockQuoteService)
	h := handler.NewQuoteHandler(mockSvc)

	id := uuid.New()
	productID := uuid.New()
	mockSvc.On("SetCatalogQuantity", id, productID, 3).Return(emptySessionView(), nil)

	c, w := testContext(http.MethodPut,
		"/api/v1/quotes/"+id.String()+"/catalog-lines/"+productID.String(),
		`{"quantity":3}`)
	c.Params = gin.Params{
		{Key: "id", Value: id.String()},
		{Key: "productID", Value: productID.String()},
	}
	h.SetCatalogLine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestQuoteHandler_SetCatalogLine_RevertWinsOverPrice(t *testing.T) {
	mockSvc := new(mocks.MockQuoteService)
	h := handler.NewQuoteHandler(mockSvc)

	id := uuid.New()
	productID := uuid.New()
	mockSvc.On("RevertCatalogUnitPrice", id, productID).Return(emptySessionView(), nil)

	c, w := testContext(http.MethodPut,
		"/api/v1/quotes/"+id.String()+"/catalog-lines/"+productID.String(),
		`{"revert":true,"unit_price":"999"}`)
	c.Params = gin.Params{
		{Key: "id", Value: id.String()},
		{Key: "productID", Value: productID.String()},
	}
	h.SetCatalogLine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertNotCalled(t, "SetCatalogUnitPrice", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuoteHandler_SetCatalogLine_EmptyBody(t *testing.T) {
	h := handler.NewQuoteHandler(new(mocks.MockQuoteService))

	id := uuid.New()
	productID := uuid.New()
	c, w := testContext(http.MethodPut,
		"/api/v1/quotes/"+id.String()+"/catalog-lines/"+productID.String(), `{}`)
	c.Params = gin.Params{
		{Key: "id", Value: id.String()},
		{Key: "productID", Value: productID.String()},
	}
	h.SetCatalogLine(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteHandler_ApplyTemplate_Unknown(t *testing.T) {
	mockSvc := new(mocks.MockQuoteService)
	h := handler.NewQuoteHandler(mockSvc)

	id := uuid.New()
	mockSvc.On("ApplyTemplate", id, 0, "gold plating").Return(nil, domain.ErrUnknownTemplate)

	c, w := testContext(http.MethodPut,
		"/api/v1/quotes/"+id.String()+"/custom-lines/0/template",
		`{"template":"gold plating"}`)
	c.Params = gin.Params{
		{Key: "id", Value: id.String()},
		{Key: "index", Value: "0"},
	}
	h.ApplyTemplate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "UNKNOWN_TEMPLATE", resp.Error.Code)
}

func TestQuoteHandler_Focus_Begin(t *testing.T) {
	mockSvc := new(mocks.MockQuoteService)
	h := handler.NewQuoteHandler(mockSvc)

	id := uuid.New()
	lineID := uuid.New()
	mockSvc.On("BeginEdit", id, quote.FocusPrice, lineID).Return(emptySessionView(), nil)

	c, w := testContext(http.MethodPut, "/api/v1/quotes/"+id.String()+"/focus",
		`{"kind":"price","action":"begin","line_id":"`+lineID.String()+`"}`)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Focus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestQuoteHandler_Focus_BadKind(t *testing.T) {
	h := handler.NewQuoteHandler(new(mocks.MockQuoteService))

	id := uuid.New()
	c, w := testContext(http.MethodPut, "/api/v1/quotes/"+id.String()+"/focus",
		`{"kind":"color","action":"begin"}`)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Focus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteHandler_TitleFocus_Cancel(t *testing.T) {
	mockSvc := new(mocks.MockQuoteService)
	h := handler.NewQuoteHandler(mockSvc)

	id := uuid.New()
	mockSvc.On("CancelTitleEdit", id).Return(emptySessionView(), nil)

	c, w := testContext(http.MethodPut, "/api/v1/quotes/"+id.String()+"/title",
		`{"action":"cancel"}`)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.TitleFocus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestQuoteHandler_ExportPDF(t *testing.T) {
	mockSvc := new(mocks.MockQuoteService)
	h := handler.NewQuoteHandler(mockSvc)

	id := uuid.New()
	mockSvc.On("ExportPDF", mock.Anything, id).Return([]byte("%PDF-stub"), nil)

	c, w := testContext(http.MethodGet, "/api/v1/quotes/"+id.String()+"/export/pdf", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.ExportPDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "quotation_")
}

func TestQuoteHandler_Templates(t *testing.T) {
	mockSvc := new(mocks.MockQuoteService)
	h := handler.NewQuoteHandler(mockSvc)

	mockSvc.On("Templates").Return(quote.Templates)

	c, w := testContext(http.MethodGet, "/api/v1/quotes/templates", "")
	h.Templates(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}
