package handler

import (
	"fmt"
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

func TestListLinks_Success(t *testing.T) {
	// Arrange
	links := []model.PublicLink{
		{Slug: "promo", Title: "Promo", Destination: "https://example.com?utm_source=linktree", IsExternal: true, Pinned: true},
		{Slug: "docs", Title: "Docs", Destination: "/docs"},
	}
	mockUsecase := mocks.NewMockLinkUsecase(t)
	mockUsecase.EXPECT().ListPublicLinks(mock.Anything).Return(links, nil).Once()

	handler := New(mockUsecase, zap.NewNop(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	w := httptest.NewRecorder()

	// Act
	handler.ListLinks(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, LinksResponse{OK: true, Links: links}, decodeBody[LinksResponse](t, w))
}

func TestListLinks_Empty(t *testing.T) {
	mockUsecase := mocks.NewMockLinkUsecase(t)
	mockUsecase.EXPECT().ListPublicLinks(mock.Anything).Return([]model.PublicLink{}, nil).Once()

	handler := New(mockUsecase, zap.NewNop(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	w := httptest.NewRecorder()

	handler.ListLinks(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true, "links": []}`, w.Body.String())
}

func TestListLinks_StoreError(t *testing.T) {
	mockUsecase := mocks.NewMockLinkUsecase(t)
	mockUsecase.EXPECT().ListPublicLinks(mock.Anything).Return(nil, assert.AnError).Once()

	handler := New(mockUsecase, zap.NewNop(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	w := httptest.NewRecorder()

	handler.ListLinks(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, decodeBody[ErrorResponse](t, w).OK)
}

func TestGetLink(t *testing.T) {
	tests := []struct {
		name           string
		link           model.PublicLink
		err            error
		expectedStatus int
	}{
		{
			name:           "Enabled link",
			link:           model.PublicLink{Slug: "promo", Title: "Promo", Destination: "/promo"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown or disabled link",
			err:            fmt.Errorf("%w: promo", usecase.ErrLinkNotFound),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase := mocks.NewMockLinkUsecase(t)
			mockUsecase.EXPECT().GetPublicLink(mock.Anything, "promo").Return(tt.link, tt.err).Once()

			handler := New(mockUsecase, zap.NewNop(), nil)
			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/links/promo", nil), "slug", "promo")
			w := httptest.NewRecorder()

			handler.GetLink(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.err == nil {
				assert.Equal(t, tt.link, decodeBody[LinkResponse](t, w).Link)
			}
		})
	}
}
