package notifications

import (
	"sync"

	"github.com/romana/rlog"
)

// GroupAdmins is the broadcast group admin sessions join to receive
// order events.
const GroupAdmins = "admins"

// sessionBuffer bounds how many undelivered events a session may hold
// before further publishes to it are dropped.
const sessionBuffer = 16

// Event is one frame pushed to subscribed sessions.
type Event struct {
	Name string      `json:"event"`
	Data interface{} `json:"data"`
}

// Session is one subscriber's handle on the hub. Events arrive on the
// channel returned by Events until Unregister closes it.
type Session struct {
	ID   string
	send chan Event
}

// Events returns the session's receive channel.
func (s *Session) Events() <-chan Event {
	return s.send
}

// Hub is the process-wide fan-out point. It is constructed once in main
// and passed by reference to everything that publishes or subscribes;
// membership is mutex-guarded since gin handlers run concurrently.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*Session
	groups   map[string]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		groups:   make(map[string]map[string]struct{}),
	}
}

// Register adds a session and returns its handle.
func (h *Hub) Register(id string) *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := &Session{ID: id, send: make(chan Event, sessionBuffer)}
	h.sessions[id] = s
	return s
}

// Unregister drops the session from every group and closes its channel.
// Safe to call for ids that were never registered.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return
	}
	delete(h.sessions, id)
	for _, members := range h.groups {
		delete(members, id)
	}
	close(s.send)
}

// Join adds a registered session to a broadcast group.
func (h *Hub) Join(id, group string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[id]; !ok {
		return
	}
	members, ok := h.groups[group]
	if !ok {
		members = make(map[string]struct{})
		h.groups[group] = members
	}
	members[id] = struct{}{}
}

// Publish pushes the event to every member of the group, best effort:
// sessions with a full buffer are skipped rather than blocked on.
// Returns how many sessions the event was handed to.
func (h *Hub) Publish(group string, ev Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	delivered := 0
	for id := range h.groups[group] {
		s, ok := h.sessions[id]
		if !ok {
			continue
		}
		select {
		case s.send <- ev:
			delivered++
		default:
			rlog.Warnf("dropping %q event for slow session %s", ev.Name, id)
		}
	}
	return delivered
}
