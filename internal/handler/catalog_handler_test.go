package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"airquote/internal/domain"
	"airquote/internal/handler"
	"airquote/internal/service"
	"airquote/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(method, path string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	c.Request, _ = http.NewRequest(method, path, reader)
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	return resp
}

func TestCatalogHandler_Create_Success(t *testing.T) {
	mockSvc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockSvc)

	brandID := uuid.New()
	styleID := uuid.New()
	typeID := uuid.New()
	pipeID := uuid.New()
	product := &domain.Product{ID: uuid.New(), Name: "Premium Heat Pump", Price: "45,900"}

	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateProductInput) bool {
		return in.Name == "Premium Heat Pump" && in.Environment == domain.EnvHeating
	})).Return(product, nil)

	body := `{"name":"Premium Heat Pump","brand_id":"` + brandID.String() +
		`","style_id":"` + styleID.String() + `","type_id":"` + typeID.String() +
		`","pipe_id":"` + pipeID.String() + `","environment":"heating","price":"45,900"}`
	c, w := testContext(http.MethodPost, "/api/v1/products", body)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestCatalogHandler_Create_MissingName(t *testing.T) {
	h := handler.NewCatalogHandler(new(mocks.MockCatalogService))

	c, w := testContext(http.MethodPost, "/api/v1/products", `{"environment":"cooling"}`)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestCatalogHandler_List_ClampsLimit(t *testing.T) {
	mockSvc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockSvc)

	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f domain.ProductFilter) bool {
		return f.Limit == 20
	})).Return([]domain.Product{}, 0, nil)

	c, w := testContext(http.MethodGet, "/api/v1/products?limit=500", "")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 20, resp.Meta.Limit)
	mockSvc.AssertExpectations(t)
}

func TestCatalogHandler_GetByID_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockSvc)

	id := uuid.New()
	mockSvc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	c, w := testContext(http.MethodGet, "/api/v1/products/"+id.String(), "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_GetByID_InvalidID(t *testing.T) {
	h := handler.NewCatalogHandler(new(mocks.MockCatalogService))

	c, w := testContext(http.MethodGet, "/api/v1/products/not-a-uuid", "")
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
}

func TestCatalogHandler_SetPinned(t *testing.T) {
	mockSvc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockSvc)

	id := uuid.New()
	mockSvc.On("SetPinned", mock.Anything, id, true).Return(nil)

	c, w := testContext(http.MethodPut, "/api/v1/products/"+id.String()+"/pin", `{"pinned":true}`)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.SetPinned(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCatalogHandler_ExportCSV(t *testing.T) {
	mockSvc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockSvc)

	mockSvc.On("ExportCSV", mock.Anything).Return([]byte("Name,Brand\n"), nil)

	c, w := testContext(http.MethodGet, "/api/v1/products/export/csv", "")
	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "catalog")
}

func TestCatalogHandler_ImportWorkbook_MissingFile(t *testing.T) {
	h := handler.NewCatalogHandler(new(mocks.MockCatalogService))

	c, w := testContext(http.MethodPost, "/api/v1/products/import", "")
	c.Request.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	h.ImportWorkbook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
}

func TestCatalogHandler_ImportWorkbook_Success(t *testing.T) {
	mockSvc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(mockSvc)

	mockSvc.On("ImportWorkbook", mock.Anything, mock.Anything).Return(3, nil)

	var buf bytes.Buffer
	boundary := "testboundary"
	buf.WriteString("--" + boundary + "\r\n")
	buf.WriteString(`Content-Disposition: form-data; name="file"; filename="catalog.xlsx"` + "\r\n")
	buf.WriteString("Content-Type: application/octet-stream\r\n\r\n")
	buf.WriteString("workbook-bytes\r\n")
	buf.WriteString("--" + boundary + "--\r\n")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/products/import", strings.NewReader(buf.String()))
	c.Request.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)

	h.ImportWorkbook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}
