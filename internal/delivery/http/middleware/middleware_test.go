package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, &buf
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSMiddleware(t *testing.T) {
	handler := NewCORSMiddleware().Handle(okHandler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/doctors", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestRequestLogger_GeneratesAndEchoesID(t *testing.T) {
	log, buf := bufferLogger()
	var seen string
	handler := NewRequestLogger(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/patients/9", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, seen, entry["request_id"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "/api/patients/9", entry["path"])
	assert.Equal(t, "warning", entry["level"])
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	log, _ := bufferLogger()
	handler := NewRequestLogger(log).Handle(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	log, buf := bufferLogger()
	handler := NewRecovery(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, buf.String(), "boom")
}

func TestRateLimiter_PerClient(t *testing.T) {
	log, _ := bufferLogger()
	rl := NewRateLimiter(log, 1, 2)
	defer rl.Stop()

	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }
	handler := rl.Handle(okHandler)

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:3333"))
	// Another client has its own bucket
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1111"))

	frozen = frozen.Add(time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1111"))
}

func TestRateLimiter_SweepDropsIdleClients(t *testing.T) {
	log, _ := bufferLogger()
	rl := NewRateLimiter(log, 1, 1)
	defer rl.Stop()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.allow("10.0.0.1")
	rl.allow("10.0.0.2")

	now = now.Add(2 * time.Minute)
	rl.allow("10.0.0.2")
	now = now.Add(2 * time.Minute)
	rl.sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.clients, "10.0.0.1")
	assert.Contains(t, rl.clients, "10.0.0.2")
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	log, _ := bufferLogger()
	rl := NewRateLimiter(log, 1, 1)
	rl.Stop()
	rl.Stop()
}
