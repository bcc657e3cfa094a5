package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestMiddleware_AssignsRequestID(t *testing.T) {
	logger := NewMockHandlerLogger()

	h := NewRequestMiddleware(logger).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loggerFor(r, nil).Info("inside handler")
		w.WriteHeader(http.StatusAccepted)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	seen := rr.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected a uuid request id, got %q", seen)
	}

	inner, ok := logger.find("inside handler")
	if !ok {
		t.Fatalf("expected the handler to log through the request-scoped logger")
	}
	if id, _ := fieldValue(inner.fields, "request_id"); id != seen {
		t.Fatalf("expected handler log to carry request id %q, got %v", seen, id)
	}

	entry, ok := logger.find("HTTP request")
	if !ok {
		t.Fatalf("expected access log entry")
	}
	if status, _ := fieldValue(entry.fields, "status"); status != http.StatusAccepted {
		t.Fatalf("expected logged status %d, got %v", http.StatusAccepted, status)
	}
	if id, _ := fieldValue(entry.fields, "request_id"); id != seen {
		t.Fatalf("expected logged request id %q, got %v", seen, id)
	}
}

func TestRequestMiddleware_KeepsValidIncomingID(t *testing.T) {
	incoming := uuid.NewString()

	h := NewRequestMiddleware(NewMockHandlerLogger()).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, incoming)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if got := rr.Header().Get(requestIDHeader); got != incoming {
		t.Fatalf("expected request id %q to be kept, got %q", incoming, got)
	}
}

func TestRequestMiddleware_ReplacesMalformedIncomingID(t *testing.T) {
	h := NewRequestMiddleware(NewMockHandlerLogger()).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "<script>")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	got := rr.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected generated uuid, got %q", got)
	}
}

func TestRequestMiddleware_RecoversPanic(t *testing.T) {
	logger := NewMockHandlerLogger()

	h := NewRequestMiddleware(logger).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Internal server error") {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
	if _, ok := logger.find("Panic while serving request"); !ok {
		t.Fatalf("expected panic to be logged")
	}
}
