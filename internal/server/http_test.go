package server

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"floorview-server/internal/engine"
	"floorview-server/internal/floorplan"
	"floorview-server/pkg/logger"
)

func TestHandleHealth_ReportsClients(t *testing.T) {
	logger.Init()

	cat := floorplan.Decompose(&floorplan.Document{}, floorplan.Schema{})
	svc := engine.NewService(cat, floorplan.DefaultSceneConfig())
	svc.Hub.Register("s1")
	svc.Hub.Register("s2")

	s := New(svc, "0", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest("GET", "/health", nil))

	var body struct {
		Status  string `json:"status"`
		Clients int    `json:"clients"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
	if body.Clients != 2 {
		t.Errorf("clients = %d, want 2", body.Clients)
	}
}
