package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesJoinedSessions(t *testing.T) {
	hub := NewHub()
	a := hub.Register("a")
	b := hub.Register("b")
	hub.Join("a", GroupAdmins)
	hub.Join("b", GroupAdmins)

	delivered := hub.Publish(GroupAdmins, Event{Name: "new-order", Data: 1})
	assert.Equal(t, 2, delivered)

	for _, s := range []*Session{a, b} {
		select {
		case ev := <-s.Events():
			assert.Equal(t, "new-order", ev.Name)
		default:
			t.Fatalf("session %s received nothing", s.ID)
		}
	}
}

func TestPublishToEmptyGroupIsNoOp(t *testing.T) {
	hub := NewHub()
	delivered := hub.Publish(GroupAdmins, Event{Name: "new-order"})
	assert.Equal(t, 0, delivered)
}

func TestRegisteredButNotJoinedReceivesNothing(t *testing.T) {
	hub := NewHub()
	s := hub.Register("lurker")

	hub.Publish(GroupAdmins, Event{Name: "new-order"})
	select {
	case ev := <-s.Events():
		t.Fatalf("unexpected event %q", ev.Name)
	default:
	}
}

func TestUnregisterClosesChannelAndStopsDelivery(t *testing.T) {
	hub := NewHub()
	s := hub.Register("a")
	hub.Join("a", GroupAdmins)
	hub.Unregister("a")

	delivered := hub.Publish(GroupAdmins, Event{Name: "new-order"})
	assert.Equal(t, 0, delivered)

	_, open := <-s.Events()
	assert.False(t, open)

	// Unregistering twice must not panic.
	hub.Unregister("a")
}

func TestSlowSessionIsSkippedNotBlocked(t *testing.T) {
	hub := NewHub()
	s := hub.Register("slow")
	hub.Join("slow", GroupAdmins)

	for i := 0; i < sessionBuffer; i++ {
		require.Equal(t, 1, hub.Publish(GroupAdmins, Event{Name: "new-order", Data: i}))
	}
	// Buffer is full now; the next publish drops rather than blocks.
	assert.Equal(t, 0, hub.Publish(GroupAdmins, Event{Name: "new-order", Data: "overflow"}))

	// Draining one slot makes the session deliverable again.
	<-s.Events()
	assert.Equal(t, 1, hub.Publish(GroupAdmins, Event{Name: "new-order"}))
}
