package middleware

import (
	"compress/gzip"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var gzipWriters = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// compressibleTypes - типы ответов, которые имеет смысл сжимать
var compressibleTypes = map[string]bool{
	"application/json": true,
	"text/html":        true,
	"text/plain":       true,
}

func isCompressible(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return compressibleTypes[mediaType]
}

func acceptsGzip(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if strings.EqualFold(name, "gzip") {
			return true
		}
	}
	return false
}

// gzipBody распаковывает тело запроса и закрывает исходное тело вместе с собой
type gzipBody struct {
	*gzip.Reader
	src io.ReadCloser
}

func (b *gzipBody) Close() error {
	err := b.Reader.Close()
	if srcErr := b.src.Close(); err == nil {
		err = srcErr
	}
	return err
}

// compressWriter решает про сжатие в момент отправки заголовков:
// сжимаются только успешные ответы с подходящим Content-Type.
type compressWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (cw *compressWriter) WriteHeader(status int) {
	if cw.wroteHeader {
		return
	}
	cw.wroteHeader = true

	h := cw.Header()
	h.Add("Vary", "Accept-Encoding")
	if status < http.StatusMultipleChoices && h.Get("Content-Encoding") == "" && isCompressible(h.Get("Content-Type")) {
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
		cw.gz = gzipWriters.Get().(*gzip.Writer)
		cw.gz.Reset(cw.ResponseWriter)
	}

	cw.ResponseWriter.WriteHeader(status)
}

func (cw *compressWriter) Write(p []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	if cw.gz != nil {
		return cw.gz.Write(p)
	}
	return cw.ResponseWriter.Write(p)
}

// finish дописывает gzip-футер и возвращает writer в пул
func (cw *compressWriter) finish() error {
	if cw.gz == nil {
		return nil
	}
	err := cw.gz.Close()
	gzipWriters.Put(cw.gz)
	cw.gz = nil
	return err
}

// GzipMiddleware распаковывает тела запросов с Content-Encoding: gzip
// и сжимает JSON и HTML ответы для клиентов, которые это принимают.
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.EqualFold(strings.TrimSpace(r.Header.Get("Content-Encoding")), "gzip") {
				zr, err := gzip.NewReader(r.Body)
				if err != nil {
					logger.Warn("Rejected request with malformed gzip body",
						zap.String("request_id", GetRequestID(r.Context())),
						zap.String("path", r.URL.Path),
						zap.Error(err),
					)
					writeJSONError(w, http.StatusBadRequest, "invalid gzip body")
					return
				}
				r.Body = &gzipBody{Reader: zr, src: r.Body}
				r.Header.Del("Content-Encoding")
				r.ContentLength = -1
			}

			if r.Method == http.MethodHead || !acceptsGzip(r) {
				next.ServeHTTP(w, r)
				return
			}

			cw := &compressWriter{ResponseWriter: w}
			defer func() {
				if err := cw.finish(); err != nil {
					logger.Warn("Failed to finish gzip response",
						zap.String("request_id", GetRequestID(r.Context())),
						zap.Error(err),
					)
				}
			}()

			next.ServeHTTP(cw, r)
		})
	}
}
