package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"leavedesk/internal/platform/metrics"
)

func TestLoggerRecordsStatus(t *testing.T) {
	collector := metrics.New()
	handler := Logger(collector)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leave/types", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status passthrough, got %d", rec.Code)
	}

	snap := collector.Snapshot()
	if snap["requestsTotal"] != uint64(1) || snap["errorsTotal"] != uint64(1) {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestLoggerWithoutCollector(t *testing.T) {
	handler := Logger(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
