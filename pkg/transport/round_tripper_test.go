package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/stretchr/testify/require"

	"github.com/bizflow/settlement/pkg/logger"
	"github.com/bizflow/settlement/pkg/transport"
)

//nolint:paralleltest
func TestLoggingRoundTripper_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, nil)))

	var gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
	}

	ctx := logger.WithRequestID(context.Background(), "req-123")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/status", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "req-123", gotRequestID)

	// Both the request and the response lines are logged.
	dec := json.NewDecoder(buf)

	var lines []map[string]any

	for dec.More() {
		var line map[string]any

		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}

	require.Len(t, lines, 2)
	require.Equal(t, "outgoing request", lines[0]["msg"])
	require.Equal(t, "incoming response", lines[1]["msg"])
}
