package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/linktree/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestPing(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		withPinger     bool
		expectedStatus int
	}{
		{name: "Storage reachable", withPinger: true, expectedStatus: http.StatusOK},
		{name: "Storage unreachable", withPinger: true, pingErr: assert.AnError, expectedStatus: http.StatusInternalServerError},
		{name: "In-process storage", withPinger: false, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var pinger Pinger
			if tt.withPinger {
				db := mocks.NewMockDatabase(t)
				db.EXPECT().Ping(mock.Anything).Return(tt.pingErr).Once()
				pinger = db
			}
			h := New(nil, zap.NewNop(), pinger)
			rec := httptest.NewRecorder()

			// Act
			h.Ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

			// Assert
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
