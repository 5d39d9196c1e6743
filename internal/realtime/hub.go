package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/aditya26raj01/status-app-backend/pkg/logger"
	"github.com/aditya26raj01/status-app-backend/pkg/telemetry"
)

// Action names the mutation a broadcast announces
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Envelope is the wire format for live updates. Type names the entity kind,
// Data carries the entity's JSON form, Action the mutation kind.
type Envelope struct {
	Type   string          `json:"type"`
	Data   json.RawMessage `json:"data"`
	Action Action          `json:"action"`
}

// Conn is the minimal connection surface the hub needs. Satisfied by the
// websocket wrapper and by test fakes.
type Conn interface {
	Send(ctx context.Context, payload []byte) error
	Close(reason string)
}

// Hub is the registry of live websocket connections. All broadcasts go to
// every registered connection; there is no per-tenant filtering.
type Hub struct {
	mu    sync.Mutex
	conns map[Conn]struct{}

	connGauge      *telemetry.UpDownCounter
	broadcastCount *telemetry.Counter
}

// NewHub creates an empty hub
func NewHub() *Hub {
	h := &Hub{conns: make(map[Conn]struct{})}
	h.connGauge, _ = telemetry.NewUpDownCounter(telemetry.MetricOpts{
		Name:        "ws_connections_active",
		Description: "Number of registered websocket connections",
		Unit:        "{connection}",
	})
	h.broadcastCount, _ = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "ws_broadcasts_total",
		Description: "Number of broadcast envelopes fanned out",
		Unit:        "1",
	})
	return h
}

// Register adds a connection to the registry
func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
	if h.connGauge != nil {
		h.connGauge.Inc(context.Background())
	}
}

// Unregister removes a connection. Unknown connections are a no-op.
func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	_, ok := h.conns[c]
	if ok {
		delete(h.conns, c)
	}
	h.mu.Unlock()
	if ok && h.connGauge != nil {
		h.connGauge.Dec(context.Background())
	}
}

// Len returns the number of registered connections
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast sends the envelope to every registered connection. The payload
// is marshalled once; sends happen outside the lock against a snapshot. A
// failing connection is closed and dropped from the registry, and never
// fails the broadcast itself.
func (h *Hub) Broadcast(ctx context.Context, env Envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		logger.Error("marshal broadcast envelope", zap.Error(err), zap.String("type", env.Type))
		return
	}

	h.mu.Lock()
	if len(h.conns) == 0 {
		h.mu.Unlock()
		return
	}
	snapshot := make([]Conn, 0, len(h.conns))
	for c := range h.conns {
		snapshot = append(snapshot, c)
	}
	h.mu.Unlock()

	if h.broadcastCount != nil {
		h.broadcastCount.Inc(ctx, telemetry.EntityTypeAttr(env.Type))
	}

	for _, c := range snapshot {
		if err := c.Send(ctx, payload); err != nil {
			logger.Warn("dropping websocket connection after failed send", zap.Error(err))
			h.Unregister(c)
			c.Close("write_failed")
		}
	}
}

// NewEnvelope marshals the entity into a broadcast envelope. A marshal
// failure returns a zero envelope and false.
func NewEnvelope(entityType string, entity interface{}, action Action) (Envelope, bool) {
	data, err := json.Marshal(entity)
	if err != nil {
		logger.Error("marshal broadcast entity", zap.Error(err), zap.String("type", entityType))
		return Envelope{}, false
	}
	return Envelope{Type: entityType, Data: data, Action: action}, true
}
