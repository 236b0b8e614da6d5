package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/linktree/internal/mocks"
	"github.com/avc-dev/linktree/internal/model"
	"github.com/avc-dev/linktree/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestAdminListLinks(t *testing.T) {
	// Arrange
	links := []model.AdminLink{
		{
			RedirectRecord: model.RedirectRecord{Slug: "draft", Destination: "/draft"},
			ShortURL:       "http://localhost:8080/draft",
			Resolved:       model.ResolvedLink{Destination: "/draft"},
		},
	}
	mockUsecase := mocks.NewMockLinkUsecase(t)
	mockUsecase.EXPECT().ListAllLinks(mock.Anything).Return(links, nil).Once()

	handler := New(mockUsecase, zap.NewNop(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/links", nil)
	w := httptest.NewRecorder()

	// Act
	handler.AdminListLinks(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[AdminLinksResponse](t, w)
	assert.True(t, body.OK)
	assert.Equal(t, links, body.Links)
	assert.Contains(t, w.Body.String(), `"linkTreeEnabled":false`)
}

func TestAdminSyncPage(t *testing.T) {
	mockUsecase := mocks.NewMockLinkUsecase(t)
	mockUsecase.EXPECT().IngestPage(mock.Anything, "page-1").
		Return(model.RedirectRecord{Slug: "promo"}, nil).Once()

	handler := New(mockUsecase, zap.NewNop(), nil)
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/admin/links/page-1/sync", nil), "pageId", "page-1")
	w := httptest.NewRecorder()

	handler.AdminSyncPage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, WebhookResponse{OK: true, Slug: "promo"}, decodeBody[WebhookResponse](t, w))
}

func TestAdminSyncPage_IncompletePage(t *testing.T) {
	mockUsecase := mocks.NewMockLinkUsecase(t)
	mockUsecase.EXPECT().IngestPage(mock.Anything, "page-1").
		Return(model.RedirectRecord{}, usecase.ErrIncompleteRecord).Once()

	handler := New(mockUsecase, zap.NewNop(), nil)
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/admin/links/page-1/sync", nil), "pageId", "page-1")
	w := httptest.NewRecorder()

	handler.AdminSyncPage(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
