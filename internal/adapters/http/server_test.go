package http_test

import (
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	beahttp "github.com/zonder-ai/beaflow/internal/adapters/http"
	"github.com/zonder-ai/beaflow/internal/logging"
	"github.com/zonder-ai/beaflow/pkg/esi"
	"github.com/zonder-ai/beaflow/pkg/flow"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	doc, err := esi.Build(esi.Params{})
	require.NoError(t, err)

	srv := httptest.NewServer(beahttp.NewHandler(doc, logging.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*stdhttp.Response, string) {
	t.Helper()
	resp, err := stdhttp.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestFlowEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/flow")
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	// The body is the deployable document itself.
	doc, err := flow.Decode(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, esi.DefaultFlowID, doc.ConversationFlowID)
	assert.Len(t, doc.Nodes, 6)
	require.NoError(t, doc.Validate())
}

func TestMermaidEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/flow.mmd")
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	assert.Contains(t, body, "graph TD")
	assert.Contains(t, body, "node_end")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Generate some traffic first so the counter exists.
	get(t, srv.URL+"/flow")
	get(t, srv.URL+"/healthz")

	resp, body := get(t, srv.URL+"/metrics")
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "beaflow_http_requests_total")
	assert.Contains(t, body, `path="/flow"`)
	assert.Contains(t, body, `code="200"`)
}

func TestUnknownPath(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := get(t, srv.URL+"/nope")
	assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
}
