package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/survivor-pool/internal/platform/logging"
)

func TestShouldTraceRequest(t *testing.T) {
	tests := map[string]bool{
		"/healthz":             false,
		" /HEALTHZ ":           false,
		"/metrics":             false,
		"/readyz":              false,
		"/v1/players":          true,
		"/v1/pool/standings":   true,
		"/v1/players/p-1/pick": true,
	}
	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", path, got, want)
		}
	}
}

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{"configured origin echoed", []string{"https://pool.example.com"}, http.MethodGet, "https://pool.example.com", http.StatusOK, "https://pool.example.com"},
		{"wildcard preflight", []string{"*"}, http.MethodOptions, "https://pool.example.com", http.StatusNoContent, "*"},
		{"unknown origin gets no header", []string{"https://pool.example.com"}, http.MethodGet, "https://other.example.com", http.StatusOK, ""},
		{"no origin passes through", []string{"*"}, http.MethodGet, "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/players", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tt.allowed, ok).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowed {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
			}
		})
	}
}

func TestRequestLogging_RecordsStatusAndBytes(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.LevelInfo, &buf)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("locked"))
	})

	RequestLogging(logger, next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/v1/players/p-1/pick", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["status"] != float64(http.StatusConflict) || entry["bytes"] != float64(len("locked")) {
		t.Fatalf("unexpected log entry: %+v", entry)
	}
	if entry["level"] != "INFO" || entry["method"] != http.MethodPut {
		t.Fatalf("unexpected log entry: %+v", entry)
	}
}
