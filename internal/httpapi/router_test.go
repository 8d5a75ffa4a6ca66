package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/monday-bot/internal/mood"
)

type staticJobs []string

func (s staticJobs) List() []string { return s }

func TestHealthz(t *testing.T) {
	h := NewRouter(mood.NewTracker(), nil, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStatusReportsMoodAndJobs(t *testing.T) {
	tracker := mood.NewTracker()
	for i := 0; i < 11; i++ {
		tracker.RecordRequest()
	}
	tracker.Refresh()
	tracker.RecordRoast()

	h := NewRouter(tracker, staticJobs{"daily-reset", "mood-updater"}, zerolog.Nop())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cynical", body["mood"])
	assert.EqualValues(t, 11, body["requests_processed"])
	assert.EqualValues(t, 1, body["roasts_given"])
	assert.Equal(t, []interface{}{"daily-reset", "mood-updater"}, body["jobs"])
}

func TestStatusWithoutJobsIsEmptyList(t *testing.T) {
	h := NewRouter(mood.NewTracker(), staticJobs(nil), zerolog.Nop())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	var body StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(t, body.Jobs)
	assert.Empty(t, body.Jobs)
	assert.Equal(t, mood.Sarcastic, body.Mood)
}

func TestUnknownRoute(t *testing.T) {
	h := NewRouter(mood.NewTracker(), nil, zerolog.Nop())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, NewRouter(mood.NewTracker(), nil, zerolog.Nop()))
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
