package handlers

import (
	"net/http"
	"strconv"
	"time"

	response "salesops/internal/adapter/http/dto/response"
	"salesops/internal/domain/entities"
	"salesops/internal/infrastructure/realtime"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

const defaultHeartbeat = 25 * time.Second

// ISubscriber registers event stream observers.
type ISubscriber interface {
	Subscribe(actor entities.Actor) (*realtime.Subscription, error)
}

// EventHandler streams domain events over Server-Sent Events.
type EventHandler struct {
	hub       ISubscriber
	heartbeat time.Duration
	shutdown  <-chan struct{}
}

type EventHandlerOption func(*EventHandler)

// WithShutdown ends every open stream once done is closed. Request contexts
// only end on client disconnect, so without it a graceful shutdown waits
// for subscribers to leave.
func WithShutdown(done <-chan struct{}) EventHandlerOption {
	return func(h *EventHandler) { h.shutdown = done }
}

func NewEventHandler(hub ISubscriber, heartbeat time.Duration, opts ...EventHandlerOption) *EventHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	h := &EventHandler{hub: hub, heartbeat: heartbeat}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type eventPayload struct {
	Seq       uint64    `json:"seq"`
	Name      string    `json:"name"`
	Entity    any       `json:"entity"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// Stream godoc
// @Summary      Live domain events
// @Description  Server-Sent Events stream. The event id is a sequence number; on a gap, re-fetch state.
// @Tags         events
// @Produce      text/event-stream
// @Success      200
// @Failure      401  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events [get]
func (h *EventHandler) Stream(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sub, err := h.hub.Subscribe(actor)
	if err != nil {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	defer sub.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.shutdown:
			return
		case e, open := <-sub.Events():
			if !open {
				return
			}
			c.Render(-1, sse.Event{
				Id:    strconv.FormatUint(e.Seq, 10),
				Event: e.Name,
				Data:  toPayload(e),
			})
			c.Writer.Flush()
		case <-ticker.C:
			c.Render(-1, sse.Event{Event: "ping", Data: time.Now().UTC().Format(time.RFC3339)})
			c.Writer.Flush()
		}
	}
}

func toPayload(e entities.Event) eventPayload {
	entity := e.Entity
	switch v := e.Entity.(type) {
	case entities.Sale:
		entity = response.FromSale(v)
	case entities.Project:
		entity = response.FromProject(v)
	}
	return eventPayload{Seq: e.Seq, Name: e.Name, Entity: entity, Actor: e.Actor, Timestamp: e.Timestamp}
}
