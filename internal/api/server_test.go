package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/pipeline"
)

const testPlan = `
[room]
name = "studio"

[[room.walls]]
name = "south"
length = 120
height = 96
depth = 12

[[sections]]
width = 48
wall = "south"

[[sections]]
width = "fill"
wall = "south"
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := NewServer(pipeline.NewRunner(nil, nil, nil), nil)
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestLayoutEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/layout", pipeline.Options{PlanTOML: testPlan})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got layoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.RunID == "" || got.Room != "studio" {
		t.Errorf("response = %+v", got)
	}
	if len(got.Layout.Sections) != 2 {
		t.Errorf("sections = %d", len(got.Layout.Sections))
	}
}

func TestValidateEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/validate", pipeline.Options{PlanTOML: testPlan})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.Valid {
		t.Errorf("plan should be valid: %+v", got)
	}
}

func TestValidateReportsFitErrors(t *testing.T) {
	ts := newTestServer(t)

	// 200 of fixed width on a 120 wall.
	overCommitted := strings.Replace(testPlan, "width = 48", "width = 200", 1)
	resp := postJSON(t, ts.URL+"/v1/validate", pipeline.Options{PlanTOML: overCommitted})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Valid || len(got.FitErrors) != 1 {
		t.Errorf("response = %+v", got)
	}
}

func TestLayoutRejectsBadRequests(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		payload any
		status  int
		code    string
	}{
		{
			name:    "missing plan",
			payload: pipeline.Options{},
			status:  http.StatusBadRequest,
			code:    "INVALID_INPUT",
		},
		{
			name:    "plan path not accepted",
			payload: pipeline.Options{PlanPath: "/etc/hosts"},
			status:  http.StatusBadRequest,
			code:    "INVALID_INPUT",
		},
		{
			name:    "malformed plan",
			payload: pipeline.Options{PlanTOML: `[room`},
			status:  http.StatusBadRequest,
			code:    "INVALID_FORMAT",
		},
		{
			name:    "unknown wall reference",
			payload: pipeline.Options{PlanTOML: strings.Replace(testPlan, `wall = "south"`, `wall = "north"`, 1)},
			status:  http.StatusBadRequest,
			code:    "WALL_NOT_FOUND",
		},
		{
			name:    "wrap around corner treatment",
			payload: pipeline.Options{PlanTOML: testPlan, CornerTreatment: "wrap_around"},
			status:  http.StatusOK, // no outside corners in this plan
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/v1/layout", tt.payload)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.code == "" {
				return
			}
			var got errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if string(got.Code) != tt.code {
				t.Errorf("code = %q, want %q", got.Code, tt.code)
			}
		})
	}
}

func TestWrapAroundRejectedWithOutsideCorner(t *testing.T) {
	ts := newTestServer(t)

	const peninsula = `
[room]
name = "peninsula"
[[room.walls]]
name = "a"
length = 60
height = 96
depth = 12
[[room.walls]]
name = "b"
length = 60
height = 96
depth = 12
angle = 135
[[sections]]
width = "fill"
wall = "a"
`
	resp := postJSON(t, ts.URL+"/v1/layout", pipeline.Options{
		PlanTOML:        peninsula,
		CornerTreatment: "wrap_around",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}
