package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/chartframe/pkg/cache"
	"github.com/matzehuels/chartframe/pkg/chart"
	"github.com/matzehuels/chartframe/pkg/observability"
	"github.com/matzehuels/chartframe/pkg/pipeline"
)

const latencyJSON = `{
  "title": "Latency",
  "width": 640,
  "height": 400,
  "measurer": "estimate",
  "x_axis": {"title": "time (s)"},
  "y_axis": {"title": "ms"},
  "series": [
    {"name": "p50", "x": [0, 10, 20, 30], "y": [12, 14, 11, 13]},
    {"name": "p99", "x": [0, 10, 20, 30], "y": [40, 55, 38, 61]}
  ]
}`

const latencyTOML = `
title = "Latency"
width = 640
height = 400
measurer = "estimate"

[[series]]
name = "p50"
x = [0, 10, 20]
y = [12, 14, 11]
`

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
	ts := httptest.NewServer(New(runner, logger, opts...).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, contentType, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) errorBody {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body healthBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
	if body.Build.Version == "" {
		t.Error("build version is empty")
	}
	if _, err := uuid.Parse(resp.Header.Get(HeaderRequestID)); err != nil {
		t.Errorf("request ID %q is not a UUID", resp.Header.Get(HeaderRequestID))
	}
}

func TestRequestIDPropagation(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"valid uuid kept", "8f14e45f-ceea-467f-a0e6-3d1f5a5c2b7e", true},
		{"garbage replaced", "not-an-id", false},
		{"missing assigned", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()

			got := resp.Header.Get(HeaderRequestID)
			if tt.keep && got != tt.incoming {
				t.Errorf("request ID = %q, want %q", got, tt.incoming)
			}
			if !tt.keep {
				if got == tt.incoming {
					t.Errorf("request ID %q was not replaced", got)
				}
				if _, err := uuid.Parse(got); err != nil {
					t.Errorf("request ID %q is not a UUID", got)
				}
			}
		})
	}
}

func TestLayout(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/layout", "application/json", latencyJSON)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get(HeaderCache); got != "miss" {
		t.Errorf("X-Cache = %q, want miss", got)
	}

	var l chart.Layout
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		t.Fatalf("decode layout: %v", err)
	}
	if l.Canvas.W != 640 || l.Canvas.H != 400 {
		t.Errorf("canvas = %+v, want 640x400", l.Canvas)
	}
	if l.Plot.Rect.W <= 0 || l.Plot.Rect.H <= 0 {
		t.Errorf("plot rect %+v is empty", l.Plot.Rect)
	}
	if len(l.X.Ticks) < 2 || len(l.Y.Ticks) < 2 {
		t.Errorf("want ticks on both axes, got x=%d y=%d", len(l.X.Ticks), len(l.Y.Ticks))
	}
	if len(l.Legend.Items) != 2 {
		t.Errorf("legend items = %d, want 2", len(l.Legend.Items))
	}
}

func TestLayoutTOML(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/layout", "application/toml", latencyTOML)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var l chart.Layout
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		t.Fatal(err)
	}
	if l.Canvas.W != 640 {
		t.Errorf("canvas width = %d, want 640", l.Canvas.W)
	}
}

func TestRenderPNG(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/render", "application/json", latencyJSON)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if _, err := uuid.Parse(resp.Header.Get(HeaderRenderID)); err != nil {
		t.Errorf("render ID %q is not a UUID", resp.Header.Get(HeaderRenderID))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 400 {
		t.Errorf("image = %dx%d, want 640x400", b.Dx(), b.Dy())
	}
}

func TestRenderJSONFormat(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/render?format=json", "application/json", latencyJSON)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var l chart.Layout
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		t.Fatalf("decode layout: %v", err)
	}
	if l.Canvas.W != 640 {
		t.Errorf("canvas width = %d, want 640", l.Canvas.W)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{
			name:   "malformed json",
			path:   "/v1/layout",
			body:   `{"series": [`,
			status: http.StatusBadRequest,
			code:   "INVALID_CONFIG",
		},
		{
			name:   "unknown field",
			path:   "/v1/layout",
			body:   `{"colour": "red"}`,
			status: http.StatusBadRequest,
			code:   "INVALID_CONFIG",
		},
		{
			name:   "length mismatch",
			path:   "/v1/layout",
			body:   `{"series": [{"x": [1, 2], "y": [1]}]}`,
			status: http.StatusBadRequest,
			code:   "INVALID_INPUT",
		},
		{
			name:   "bad dimensions",
			path:   "/v1/render",
			body:   `{"width": -5, "height": 100}`,
			status: http.StatusBadRequest,
			code:   "INVALID_DIMENSIONS",
		},
		{
			name:   "unknown font",
			path:   "/v1/layout",
			body:   `{"style": {"tick_label_font": {"family": "comic", "size": 10}}}`,
			status: http.StatusUnprocessableEntity,
			code:   "UNSUPPORTED",
		},
		{
			name:   "bad format",
			path:   "/v1/render?format=svg",
			body:   latencyJSON,
			status: http.StatusBadRequest,
			code:   "INVALID_FORMAT",
		},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+tt.path, "application/json", tt.body)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			body := decodeError(t, resp)
			if string(body.Error.Code) != tt.code {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.code)
			}
			if body.Error.Message == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestBodyTooLarge(t *testing.T) {
	ts := newTestServer(t, WithMaxBodyBytes(64))

	resp := post(t, ts.URL+"/v1/layout", "application/json", latencyJSON)
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", resp.StatusCode)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/render")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	statuses chan int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.statuses <- status
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{statuses: make(chan int, 4)}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	ts := newTestServer(t)
	resp := post(t, ts.URL+"/v1/layout", "application/json", `{"series": [{"x": [1], "y": []}]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	select {
	case got := <-hooks.statuses:
		if got != http.StatusBadRequest {
			t.Errorf("hook status = %d, want 400", got)
		}
	case <-time.After(time.Second):
		t.Fatal("OnResponse not called")
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	logger := log.New(io.Discard)
	s := New(pipeline.NewRunner(nil, nil, logger), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
