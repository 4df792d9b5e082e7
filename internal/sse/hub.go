package sse

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ufoaiorg/ufoai-sub020/internal/event"
)

// StreamedTypes are the bus events a stream can carry.
var StreamedTypes = []event.Type{
	event.ItemMoved,
	event.LoadoutGenerated,
	event.InventoryReleased,
}

// Message is one frame on a stream. Seq increases by one per published bus
// event, so a client that sees a gap knows it missed frames.
type Message struct {
	Seq     uint64     `json:"seq"`
	Type    event.Type `json:"type"`
	Version string     `json:"version,omitempty"`
	Time    time.Time  `json:"time"`
	Payload any        `json:"payload,omitempty"`
}

// Filter selects the event types a stream receives. Empty means all of
// StreamedTypes.
type Filter []event.Type

// ParseFilter reads a comma separated type list. Unknown names are an error
// so a typo does not leave a client on a silent stream.
func ParseFilter(raw string) (Filter, error) {
	if raw == "" {
		return nil, nil
	}
	var f Filter
	for _, name := range strings.Split(raw, ",") {
		t := event.Type(strings.TrimSpace(name))
		if !slices.Contains(StreamedTypes, t) {
			return nil, fmt.Errorf(ErrMsgUnknownType, name)
		}
		if !slices.Contains(f, t) {
			f = append(f, t)
		}
	}
	return f, nil
}

func (f Filter) allows(t event.Type) bool {
	return len(f) == 0 || slices.Contains(f, t)
}

type stream struct {
	filter  Filter
	out     chan Message
	dropped atomic.Uint64
}

// Hub fans bus events out to open streams. Publishing runs on the bus
// caller's goroutine and never blocks; a full stream misses the frame.
type Hub struct {
	mu      sync.RWMutex
	streams map[*stream]struct{}
	stopped bool
	seq     atomic.Uint64
	now     func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		streams: make(map[*stream]struct{}),
		now:     time.Now,
	}
}

// Subscribe forwards every streamed bus event type to the hub.
func (h *Hub) Subscribe(bus event.Bus) {
	for _, t := range StreamedTypes {
		bus.Subscribe(t, h.handle)
	}
	slog.Info(LogMsgSubscribed, "types", StreamedTypes)
}

func (h *Hub) handle(_ context.Context, evt event.Event) error {
	h.publish(Message{Type: evt.Type, Version: evt.Version, Payload: evt.Payload})
	return nil
}

func (h *Hub) publish(msg Message) {
	msg.Seq = h.seq.Add(1)
	msg.Time = h.now()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.streams {
		if !s.filter.allows(msg.Type) {
			continue
		}
		select {
		case s.out <- msg:
		default:
			s.dropped.Add(1)
			slog.Warn(LogMsgFrameDropped, "type", msg.Type, "seq", msg.Seq)
		}
	}
}

// open registers a stream, or reports false once the hub is stopped.
func (h *Hub) open(filter Filter) (*stream, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return nil, false
	}
	s := &stream{filter: filter, out: make(chan Message, StreamBuffer)}
	h.streams[s] = struct{}{}
	return s, true
}

func (h *Hub) close(s *stream) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.streams[s]; ok {
		delete(h.streams, s)
		close(s.out)
	}
}

// Stop ends every open stream and refuses new ones, so HTTP shutdown is
// not held up by long-lived connections.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopped = true
	for s := range h.streams {
		delete(h.streams, s)
		close(s.out)
	}
}

// Streams is the number of open streams.
func (h *Hub) Streams() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.streams)
}
