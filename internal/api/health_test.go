package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cinegraph/cinegraph/internal/api"
	"github.com/cinegraph/cinegraph/internal/store"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewHealthHandler(&mockDataset{ready: false}, testLogger(), "1.2.3")
	r.GET("/health", h.Liveness)

	w := doGet(r, "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body["status"] != "ok" || body["version"] != "1.2.3" {
		t.Errorf("unexpected body: %v", body)
	}

	if body["dataset_ready"] != false {
		t.Errorf("dataset_ready = %v, want false", body["dataset_ready"])
	}
}

func TestReadiness_BeforeAndAfterLoad(t *testing.T) {
	t.Parallel()

	ds := &mockDataset{ready: false}

	r := newTestRouter()
	h := api.NewHealthHandler(ds, testLogger(), "1.2.3")
	r.GET("/ready", h.Readiness)

	w := doGet(r, "/ready")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before load, got %d", w.Code)
	}

	ds.ready = true
	ds.counters = store.Counters{Titles: 3, People: 2, Principals: 5, Crews: 3, Ratings: 1}

	w = doGet(r, "/ready")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after load, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Status string           `json:"status"`
		Rows   map[string]int64 `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body.Status != "ready" {
		t.Errorf("status = %q, want ready", body.Status)
	}

	if body.Rows["titles"] != 3 || body.Rows["principals"] != 5 {
		t.Errorf("rows = %v", body.Rows)
	}
}
