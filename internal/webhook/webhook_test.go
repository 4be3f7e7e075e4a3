package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webdevwork7/linkedin-zen-post/internal/compose"
)

func TestNewRequiresURL(t *testing.T) {
	_, err := New(Config{URL: "   "})

	var cfgErr compose.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "webhook", cfgErr.Component)
	assert.Equal(t, []string{"webhook.url"}, cfgErr.Keys)
}

func TestDispatchPostsJSON(t *testing.T) {
	var gotMethod, gotContentType, gotRequestID string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	require.NoError(t, err)

	payload := compose.Payload{
		"node_type": "linkedin",
		"post_type": "image",
		"node_id":   "acct-42",
		"text":      "new office",
		"image_url": "https://cdn.example.com/a.jpg",
	}
	require.NoError(t, client.Dispatch(context.Background(), "req-123", payload))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "req-123", gotRequestID)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	assert.Equal(t, "image", sent["post_type"])
	assert.Equal(t, "https://cdn.example.com/a.jpg", sent["image_url"])
}

func TestDispatchNon2xxIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow disabled", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	require.NoError(t, err)

	err = client.Dispatch(context.Background(), "req-123", compose.Payload{"text": "hi"})

	var tErr compose.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, http.StatusServiceUnavailable, tErr.Status)
	assert.Contains(t, tErr.Error(), "workflow disabled")
}

func TestDispatchConnectionFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := New(Config{URL: server.URL})
	require.NoError(t, err)

	err = client.Dispatch(context.Background(), "req-123", compose.Payload{"text": "hi"})

	var tErr compose.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Zero(t, tErr.Status)
}

// End-to-end: a text post against a live endpoint walks the pipeline through
// every stage and clears the session.
func TestPipelineEndToEndSuccess(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	require.NoError(t, err)

	pipeline := compose.NewPipeline(client, "acct-42")
	var seen []compose.State
	pipeline.OnTransition = func(s compose.State) { seen = append(seen, s) }

	state := &compose.PostState{Type: compose.TypeText, Caption: "hello world"}
	result, err := pipeline.Submit(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, []compose.State{
		compose.StateValidating,
		compose.StateBuilding,
		compose.StateDispatching,
		compose.StateSucceeded,
		compose.StateIdle,
	}, seen)
	assert.Equal(t, 1, requests)
	assert.NotEmpty(t, result.RequestID)
	assert.Equal(t, "", state.Caption)
	assert.Equal(t, compose.DefaultType, state.Type)
}

// End-to-end: a failing endpoint leaves the composition untouched so the
// user can resubmit.
func TestPipelineEndToEndFailureKeepsState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	require.NoError(t, err)

	pipeline := compose.NewPipeline(client, "acct-42")
	state := &compose.PostState{Type: compose.TypeText, Caption: "hello world"}

	_, err = pipeline.Submit(context.Background(), state)

	var tErr compose.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, http.StatusBadGateway, tErr.Status)
	assert.Equal(t, "hello world", state.Caption)
	assert.Equal(t, compose.StateIdle, pipeline.State())
}
