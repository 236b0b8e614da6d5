package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	webhookPayload = `{"page_id":"59833787-2cf9-4fdf-8782-e53db20768a5"}`
	linksPayload   = `{"ok":true,"links":[{"slug":"promo","destination":"/promo"}]}`
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzipString(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()

	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGzipMiddleware_Response(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		contentType    string
		acceptEncoding string
		status         int
		compressed     bool
	}{
		{name: "JSON", contentType: "application/json", acceptEncoding: "gzip", compressed: true},
		{name: "JSON with charset", contentType: "application/json; charset=utf-8", acceptEncoding: "gzip", compressed: true},
		{name: "Upper case media type", contentType: "TEXT/HTML", acceptEncoding: "gzip", compressed: true},
		{name: "Encoding list with q-values", contentType: "application/json", acceptEncoding: "br;q=1.0, gzip;q=0.8", compressed: true},
		{name: "Client without gzip", contentType: "application/json", acceptEncoding: "", compressed: false},
		{name: "Identity only", contentType: "application/json", acceptEncoding: "identity", compressed: false},
		{name: "Binary type", contentType: "application/octet-stream", acceptEncoding: "gzip", compressed: false},
		{name: "Error status", contentType: "application/json", acceptEncoding: "gzip", status: http.StatusNotFound, compressed: false},
		{name: "HEAD request", method: http.MethodHead, contentType: "application/json", acceptEncoding: "gzip", compressed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			status := tt.status
			if status == 0 {
				status = http.StatusOK
			}
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(status)
				_, _ = w.Write([]byte(linksPayload))
			})
			req := httptest.NewRequest(method, "/api/links", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			// Act
			GzipMiddleware(zap.NewNop())(next).ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, status, rec.Code)
			if tt.compressed {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, linksPayload, gunzipString(t, rec.Body.Bytes()))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, linksPayload, rec.Body.String())
		})
	}
}

func TestGzipMiddleware_VaryHeader(t *testing.T) {
	// Arrange
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "pong")
	})
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	GzipMiddleware(zap.NewNop())(next).ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
	assert.Equal(t, "pong", gunzipString(t, rec.Body.Bytes()))
}

func TestGzipMiddleware_RedirectIsNotCompressed(t *testing.T) {
	// Arrange
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://example.com/landing", http.StatusFound)
	})
	req := httptest.NewRequest(http.MethodGet, "/api/redirect?to=https://example.com/landing", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	GzipMiddleware(zap.NewNop())(next).ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/landing", rec.Header().Get("Location"))
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestGzipMiddleware_RequestBody(t *testing.T) {
	tests := []struct {
		name            string
		body            []byte
		contentEncoding string
		expectedStatus  int
		expectedBody    string
	}{
		{
			name:            "Gzip body is decompressed",
			body:            gzipBytes(t, webhookPayload),
			contentEncoding: "gzip",
			expectedStatus:  http.StatusOK,
			expectedBody:    webhookPayload,
		},
		{
			name:            "Plain body passes through",
			body:            []byte(webhookPayload),
			expectedStatus:  http.StatusOK,
			expectedBody:    webhookPayload,
		},
		{
			name:            "Malformed gzip is rejected",
			body:            []byte("not gzip data"),
			contentEncoding: "gzip",
			expectedStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var received string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				received = string(body)
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/api/notion-webhook", bytes.NewReader(tt.body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rec := httptest.NewRecorder()

			// Act
			GzipMiddleware(zap.NewNop())(next).ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedBody, received)
		})
	}
}

func TestGzipMiddleware_MalformedBodyIsLogged(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.WarnLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})
	req := httptest.NewRequest(http.MethodPost, "/api/notion-webhook", strings.NewReader("invalid gzip data"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	GzipMiddleware(zap.New(core))(next).ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"invalid gzip body"}`, rec.Body.String())

	entries := logs.FilterMessage("Rejected request with malformed gzip body").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap(), "error")
	assert.Equal(t, "/api/notion-webhook", entries[0].ContextMap()["path"])
}

func TestIsCompressible(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/html; charset=utf-8", true},
		{"text/plain", true},
		{"APPLICATION/JSON", true},
		{"application/xml", false},
		{"image/png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, isCompressible(tt.contentType))
		})
	}
}
