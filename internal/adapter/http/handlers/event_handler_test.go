package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salesops/internal/domain/entities"
	"salesops/internal/infrastructure/realtime"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// readEvent scans the stream until an event with the given name arrives and
// returns its id and data lines.
func readEvent(t *testing.T, sc *bufio.Scanner, name string) (string, string) {
	t.Helper()
	var id, event, data string
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "id:"):
			id = strings.TrimSpace(strings.TrimPrefix(line, "id:"))
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		case line == "":
			if event == name {
				return id, data
			}
			id, event, data = "", "", ""
		}
	}
	t.Fatalf("stream ended before %s: %v", name, sc.Err())
	return "", ""
}

func TestEventHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unauthenticated", func(t *testing.T) {
		hub := realtime.NewHub()
		r := gin.New()
		r.GET("/v1/events", NewEventHandler(hub, time.Hour).Stream)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/events", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if hub.ObserverCount() != 0 {
			t.Fatalf("expected no observers, got %d", hub.ObserverCount())
		}
	})

	t.Run("delivers events and unsubscribes on disconnect", func(t *testing.T) {
		hub := realtime.NewHub()
		r := gin.New()
		r.Use(withActor(manager))
		r.GET("/v1/events", NewEventHandler(hub, time.Hour).Stream)
		srv := httptest.NewServer(r)
		defer srv.Close()

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/events", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
		require.Equal(t, 1, hub.ObserverCount())

		hub.Publish(ctx, entities.Event{
			Name:      entities.EventNewProject,
			Entity:    entities.Project{ID: "p-1", SaleID: "s-1", Status: entities.ProjectStatusActive},
			Actor:     "Maya",
			Timestamp: time.Now().UTC(),
		})

		id, data := readEvent(t, bufio.NewScanner(resp.Body), entities.EventNewProject)
		require.Equal(t, "1", id)
		var payload struct {
			Seq    uint64 `json:"seq"`
			Name   string `json:"name"`
			Actor  string `json:"actor"`
			Entity struct {
				ID       string `json:"id"`
				Progress int    `json:"progress"`
			} `json:"entity"`
		}
		require.NoError(t, json.Unmarshal([]byte(data), &payload))
		require.Equal(t, uint64(1), payload.Seq)
		require.Equal(t, "p-1", payload.Entity.ID)
		require.Equal(t, "Maya", payload.Actor)

		cancel()
		require.Eventually(t, func() bool { return hub.ObserverCount() == 0 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("heartbeat", func(t *testing.T) {
		hub := realtime.NewHub()
		r := gin.New()
		r.Use(withActor(accounts))
		r.GET("/v1/events", NewEventHandler(hub, 10*time.Millisecond).Stream)
		srv := httptest.NewServer(r)
		defer srv.Close()

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/events", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		_, data := readEvent(t, bufio.NewScanner(resp.Body), "ping")
		require.NotEmpty(t, data)
	})
	t.Run("shutdown ends open streams", func(t *testing.T) {
		hub := realtime.NewHub()
		done := make(chan struct{})
		r := gin.New()
		r.Use(withActor(manager))
		r.GET("/v1/events", NewEventHandler(hub, time.Hour, WithShutdown(done)).Stream)
		srv := httptest.NewServer(r)
		defer srv.Close()

		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/v1/events", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, 1, hub.ObserverCount())

		close(done)
		_, err = io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Eventually(t, func() bool { return hub.ObserverCount() == 0 }, 2*time.Second, 10*time.Millisecond)
	})
}
