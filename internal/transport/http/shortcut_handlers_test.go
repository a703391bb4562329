package http

import (
	"encoding/json"
	stdhttp "net/http"
	"testing"

	"github.com/vovakirdan/hidlink/internal/hid"
)

func TestShortcutLifecycle(t *testing.T) {
	ts, tr := startTestServer(t)

	resp := postJSON(t, ts.URL+"/api/shortcuts", `{"name":"lock","action":"CTRL_ALT_DEL"}`)
	if resp.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("unexpected create status: %d", resp.StatusCode)
	}

	var created ShortcutResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created shortcut: %v", err)
	}
	if created.ID == 0 || created.Action != "CTRL_ALT_DEL" {
		t.Fatalf("unexpected shortcut: %+v", created)
	}

	listResp, err := ts.Client().Get(ts.URL + "/api/shortcuts")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	defer listResp.Body.Close()

	var list []ShortcutResponse
	if err := json.NewDecoder(listResp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "lock" {
		t.Fatalf("unexpected list: %+v", list)
	}

	resp = postJSON(t, ts.URL+"/api/shortcuts/1/send", `{}`)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("unexpected send status: %d", resp.StatusCode)
	}
	tr.waitForCount(t, 1)
	if cmd := tr.last(); cmd.Action != hid.ActionCtrlAltDel {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	req, _ := stdhttp.NewRequest(stdhttp.MethodDelete, ts.URL+"/api/shortcuts/1", nil)
	delResp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != stdhttp.StatusNoContent {
		t.Fatalf("unexpected delete status: %d", delResp.StatusCode)
	}

	delResp, err = ts.Client().Do(req)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != stdhttp.StatusNotFound {
		t.Fatalf("unexpected second delete status: %d", delResp.StatusCode)
	}
}

func TestShortcutValidation(t *testing.T) {
	ts, _ := startTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "both payloads", body: `{"name":"x","action":"ENTER","text":"hi"}`, want: stdhttp.StatusBadRequest},
		{name: "no payload", body: `{"name":"x"}`, want: stdhttp.StatusBadRequest},
		{name: "unknown action", body: `{"name":"x","action":"warp"}`, want: stdhttp.StatusBadRequest},
		{name: "missing name", body: `{"action":"ENTER"}`, want: stdhttp.StatusBadRequest},
		{name: "text snippet ok", body: `{"name":"hi","text":"hello"}`, want: stdhttp.StatusCreated},
		{name: "duplicate name", body: `{"name":"hi","text":"hello"}`, want: stdhttp.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/shortcuts", tt.body)
			if resp.StatusCode != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}
