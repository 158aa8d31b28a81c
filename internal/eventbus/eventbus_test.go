package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quicklaunch/internal/domain"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := New()
	defer bus.Close()

	got := make(chan DomainEvent, 1)
	bus.Subscribe(EventScanStarted, func(e DomainEvent) {
		got <- e
	})

	bus.Publish(ScanStartedEvent{Paths: []string{"/usr/share/applications"}})

	select {
	case e := <-got:
		require.Equal(t, EventScanStarted, e.Type())
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestEventsDeliveredInPublishOrder(t *testing.T) {
	bus := New()
	defer bus.Close()

	var names []string
	done := make(chan struct{})
	bus.Subscribe(EventEntryDiscovered, func(e DomainEvent) {
		ev := e.(EntryDiscoveredEvent)
		names = append(names, ev.Descriptor.Name)
		if len(names) == 3 {
			close(done)
		}
	})

	for _, n := range []string{"a", "b", "c"} {
		bus.Publish(EntryDiscoveredEvent{Descriptor: domain.Descriptor{Name: n}})
	}

	select {
	case <-done:
		require.Equal(t, []string{"a", "b", "c"}, names)
	case <-time.After(2 * time.Second):
		t.Fatal("events not delivered")
	}
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	bus := New()
	defer bus.Close()

	bus.Subscribe(EventError, func(DomainEvent) {
		panic("boom")
	})
	got := make(chan struct{}, 1)
	bus.Subscribe(EventScanCompleted, func(DomainEvent) {
		got <- struct{}{}
	})

	bus.Publish(ErrorEvent{Message: "x"})
	bus.Publish(ScanCompletedEvent{EntriesFound: 0})

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher died after handler panic")
	}
}
