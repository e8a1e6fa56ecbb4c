package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"airquote/internal/domain"
	"airquote/internal/handler"
	"airquote/internal/service"
	"airquote/mocks"
)

func TestSheetHandler_Sync_WithURL(t *testing.T) {
	mockSvc := new(mocks.MockSheetSyncService)
	h := handler.NewSheetHandler(mockSvc)

	url := "https://docs.google.com/spreadsheets/d/abc123/edit"
	mockSvc.On("Sync", mock.Anything, url).
		Return(&service.SyncResult{Imported: 7, SourceURL: url}, nil)

	c, w := testContext(http.MethodPost, "/api/v1/sheet/sync", `{"url":"`+url+`"}`)
	h.Sync(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestSheetHandler_Sync_EmptyBodyUsesPreference(t *testing.T) {
	mockSvc := new(mocks.MockSheetSyncService)
	h := handler.NewSheetHandler(mockSvc)

	mockSvc.On("SyncFromPreference", mock.Anything).
		Return(&service.SyncResult{Imported: 2}, nil)

	c, w := testContext(http.MethodPost, "/api/v1/sheet/sync", "")
	h.Sync(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
	mockSvc.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}

func TestSheetHandler_Sync_Unreachable(t *testing.T) {
	mockSvc := new(mocks.MockSheetSyncService)
	h := handler.NewSheetHandler(mockSvc)

	url := "https://docs.google.com/spreadsheets/d/abc123/edit"
	mockSvc.On("Sync", mock.Anything, url).Return(nil, domain.ErrSheetUnreachable)

	c, w := testContext(http.MethodPost, "/api/v1/sheet/sync", `{"url":"`+url+`"}`)
	h.Sync(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "SHEET_UNREACHABLE", resp.Error.Code)
}

func TestSheetHandler_Sync_EmptyTaxonomy(t *testing.T) {
	mockSvc := new(mocks.MockSheetSyncService)
	h := handler.NewSheetHandler(mockSvc)

	url := "https://docs.google.com/spreadsheets/d/abc123/edit"
	mockSvc.On("Sync", mock.Anything, url).Return(nil, domain.ErrTaxonomyEmpty)

	c, w := testContext(http.MethodPost, "/api/v1/sheet/sync", `{"url":"`+url+`"}`)
	h.Sync(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "TAXONOMY_EMPTY", resp.Error.Code)
}
