package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ibuki-kubota/my-workout-app/internal/models"
	"github.com/ibuki-kubota/my-workout-app/internal/storage"
)

// newTestServer creates an httptest server that routes requests to handler
// functions keyed by path. Verifies the HTTP client hits the right endpoints.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestListLogs verifies the client parses the log list and forwards the API
// key header.
func TestListLogs(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/logs": func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("X-API-Key"); got != "test-key" {
				t.Errorf("X-API-Key = %q, want test-key", got)
			}
			writeTestJSON(t, w, []models.HistoryRecord{
				{ID: 2, DayKey: "2024-05-03", TotalSets: 5},
				{ID: 1, DayKey: "2024-05-01", TotalSets: 3},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "test-key")
	records, err := client.ListLogs(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != 2 || records[0].TotalSets != 5 {
		t.Errorf("records[0] = %+v", records[0])
	}
}

// TestListLogsNoKey verifies no header is sent when the key is empty.
func TestListLogsNoKey(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/logs": func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Header["X-Api-Key"]; ok {
				t.Error("X-API-Key header sent despite empty key")
			}
			writeTestJSON(t, w, []models.HistoryRecord{})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	if _, err := client.ListLogs(context.Background()); err != nil {
		t.Fatal(err)
	}
}

// TestGetLogStats verifies the client parses a single struct response.
func TestGetLogStats(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/logs/stats": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, storage.LogStats{TotalSessions: 12, TotalSets: 84})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	stats, err := client.GetLogStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalSessions != 12 || stats.TotalSets != 84 {
		t.Errorf("stats = %+v", stats)
	}
}

// TestErrorStatus verifies a non-200 response surfaces as an error including
// the status code.
func TestErrorStatus(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/logs": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"missing API key"}`, http.StatusUnauthorized)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	if _, err := client.ListLogs(context.Background()); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

// TestBaseURLTrimmed verifies a trailing slash on the base URL does not
// produce a double slash in request paths.
func TestBaseURLTrimmed(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/logs": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, []models.HistoryRecord{})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL+"/", "")
	if _, err := client.ListLogs(context.Background()); err != nil {
		t.Fatal(err)
	}
}
