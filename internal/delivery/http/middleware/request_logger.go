package middleware

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestIDFromContext retrieves the request id set by RequestLogger
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// statusRecorder captures the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type RequestLogger struct {
	log *logrus.Logger
}

func NewRequestLogger(log *logrus.Logger) *RequestLogger {
	return &RequestLogger{log: log}
}

// Handle tags the request with an id (reusing an incoming X-Request-ID) and
// writes one access-log entry once the handler returns.
func (m *RequestLogger) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()

		requestID := req.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		ctx := context.WithValue(req.Context(), requestIDKey, requestID)

		next.ServeHTTP(rec, req.WithContext(ctx))

		entry := m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     req.Method,
			"path":       req.URL.Path,
			"status":     rec.status,
			"latency":    time.Since(start).String(),
			"remote_ip":  clientIP(req),
		})
		switch {
		case rec.status >= http.StatusInternalServerError:
			entry.Error("request")
		case rec.status >= http.StatusBadRequest:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	})
}

func clientIP(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
