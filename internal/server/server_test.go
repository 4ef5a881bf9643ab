package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GriffinCanCode/uncertain/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.RateLimit.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}
	srv, err := NewServer(cfg, nil)
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, srv *Server, method, path, contentType, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	w, body := do(t, srv, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "online", body["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, body = do(t, srv, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	stats := body["service_registry"].(map[string]any)
	assert.Equal(t, 1.0, stats["total_services"])
	assert.Equal(t, 11.0, stats["total_tools"])
}

func TestListServices(t *testing.T) {
	srv := newTestServer(t, nil)

	w, body := do(t, srv, http.MethodGet, "/services", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	services := body["services"].([]any)
	require.Len(t, services, 1)
	assert.Equal(t, "uncertainty", services[0].(map[string]any)["id"])

	w, body = do(t, srv, http.MethodGet, "/services?category=math", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["services"])
}

func TestExecuteService(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("multiply", func(t *testing.T) {
		w, body := do(t, srv, http.MethodPost, "/services/execute", "application/json",
			`{"tool_id":"uncertainty.multiply","params":{"a":{"value":3.5,"uncertainty":3.5},"b":"2±2"}}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]any)
		assert.InDelta(t, 7, data["value"], 1e-11)
		assert.InDelta(t, 7*math.Sqrt(2), data["uncertainty"], 1e-11)
	})

	t.Run("operation failure is a result", func(t *testing.T) {
		w, body := do(t, srv, http.MethodPost, "/services/execute", "application/json",
			`{"tool_id":"uncertainty.divide","params":{"a":"1±0.1","b":0}}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "division by zero")
	})

	t.Run("unknown service", func(t *testing.T) {
		w, _ := do(t, srv, http.MethodPost, "/services/execute", "application/json",
			`{"tool_id":"nope.add","params":{}}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed tool id", func(t *testing.T) {
		w, _ := do(t, srv, http.MethodPost, "/services/execute", "application/json",
			`{"tool_id":"add","params":{}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad json", func(t *testing.T) {
		w, _ := do(t, srv, http.MethodPost, "/services/execute", "application/json", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

const yamlSheet = `
quantities:
  x: "0±0.1"
  y: 4.0
steps:
  - name: s
    op: sin
    a: x
  - name: z
    op: "*"
    a: 2
    b: s
`

func TestEvaluateWorksheet(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("yaml by content type", func(t *testing.T) {
		w, body := do(t, srv, http.MethodPost, "/worksheets/evaluate", "application/yaml", yamlSheet)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "yaml", body["format"])

		quantities := body["quantities"].([]any)
		require.Len(t, quantities, 4)
		last := quantities[3].(map[string]any)
		assert.Equal(t, "z", last["name"])
		assert.InDelta(t, 0, last["value"], 1e-11)
		assert.InDelta(t, 0.2, last["uncertainty"], 1e-11)
	})

	t.Run("toml by query", func(t *testing.T) {
		sheet := "[quantities]\nx = \"1±0.1\"\n\n[[steps]]\nname = \"d\"\nop = \"sub\"\na = 3\nb = \"x\"\n"
		w, body := do(t, srv, http.MethodPost, "/worksheets/evaluate?format=toml", "text/plain", sheet)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		quantities := body["quantities"].([]any)
		last := quantities[len(quantities)-1].(map[string]any)
		assert.InDelta(t, 2, last["value"], 1e-11)
		assert.InDelta(t, 0.1, last["uncertainty"], 1e-11)
	})

	t.Run("unsupported format", func(t *testing.T) {
		w, _ := do(t, srv, http.MethodPost, "/worksheets/evaluate?format=xml", "", "<x/>")
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("undecodable", func(t *testing.T) {
		w, _ := do(t, srv, http.MethodPost, "/worksheets/evaluate", "application/json", `[1,2`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failing step", func(t *testing.T) {
		w, body := do(t, srv, http.MethodPost, "/worksheets/evaluate", "application/json",
			`{"quantities":{"x":"1±0.1"},"steps":[{"name":"r","op":"/","a":"x","b":0}]}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, body["error"], `step "r"`)
	})
}

func TestWorksheetLimits(t *testing.T) {
	t.Run("body size", func(t *testing.T) {
		srv := newTestServer(t, func(cfg *config.Config) { cfg.Worksheet.MaxBytes = 16 })
		w, _ := do(t, srv, http.MethodPost, "/worksheets/evaluate", "application/yaml", yamlSheet)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("step count", func(t *testing.T) {
		srv := newTestServer(t, func(cfg *config.Config) { cfg.Worksheet.MaxSteps = 1 })
		w, _ := do(t, srv, http.MethodPost, "/worksheets/evaluate", "application/yaml", yamlSheet)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	do(t, srv, http.MethodPost, "/services/execute", "application/json",
		`{"tool_id":"uncertainty.add","params":{"a":"1±0.1","b":1}}`)
	do(t, srv, http.MethodPost, "/worksheets/evaluate", "application/yaml", yamlSheet)

	w, _ := do(t, srv, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	text := w.Body.String()
	assert.Contains(t, text, `uncertain_operations_total{status="ok",tool="uncertainty.add"} 1`)
	assert.Contains(t, text, "uncertain_worksheet_steps_count 1")
	assert.Contains(t, text, `path="/services/execute"`)
}

func TestRateLimitedServer(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.RequestsPerSecond = 1
		cfg.RateLimit.Burst = 1
	})

	w, _ := do(t, srv, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, srv, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestShutdownBeforeRun(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.Host = "127.0.0.1"
		cfg.Server.Port = "0"
	})
	require.NoError(t, srv.Shutdown(context.Background()))

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run kept serving after Shutdown")
	}
}

func TestShutdownStopsRun(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.Host = "127.0.0.1"
		cfg.Server.Port = "0"
	})

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	// Whichever of Run and Shutdown gets there first, Run must return nil
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestNonFiniteResults(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("execute", func(t *testing.T) {
		for _, body := range []string{
			`{"tool_id":"uncertainty.multiply","params":{"a":"1e308±1","b":10}}`,
			`{"tool_id":"uncertainty.add","params":{"a":"Inf±1","b":1}}`,
		} {
			w, out := do(t, srv, http.MethodPost, "/services/execute", "application/json", body)
			require.Equal(t, http.StatusOK, w.Code, body)
			assert.Equal(t, false, out["success"], body)
			assert.Contains(t, out["error"], "non-finite result", body)
		}
	})

	t.Run("worksheet", func(t *testing.T) {
		sheet := "quantities:\n  x: \"1e308±1\"\nsteps:\n  - name: y\n    op: \"*\"\n    a: x\n    b: 10\n"
		w, out := do(t, srv, http.MethodPost, "/worksheets/evaluate", "application/yaml", sheet)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		assert.Contains(t, out["error"], `step "y"`)
		assert.Contains(t, out["error"], "non-finite result")
	})
}

func TestUnknownToolsShareOneSeries(t *testing.T) {
	srv := newTestServer(t, nil)

	for i := 0; i < 20; i++ {
		do(t, srv, http.MethodPost, "/services/execute", "application/json",
			fmt.Sprintf(`{"tool_id":"uncertainty.junk%d","params":{}}`, i))
	}

	w, _ := do(t, srv, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	text := w.Body.String()
	assert.Contains(t, text, `uncertain_operations_total{status="error",tool="unknown"} 20`)
	assert.NotContains(t, text, "junk")
}
