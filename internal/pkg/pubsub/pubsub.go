package pubsub

import (
	"sync"
	"time"
)

// Topic identifies a class of cross-view refresh signals. Views that render
// room or reservation state independently subscribe to the topic instead of
// being called directly by the flow that caused the change.
type Topic string

const (
	TopicRoomsChanged        Topic = "rooms_changed"
	TopicReservationsChanged Topic = "reservations_changed"
)

// Event is the broadcast payload. Reason names the action that triggered the
// signal (e.g. "reservation_created", "checkin"); subscribers refetch rather
// than patch local state, so the payload stays minimal.
type Event struct {
	Topic      Topic     `json:"topic"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}

type subscriber struct {
	topics map[Topic]struct{}
	ch     chan Event
}

// Bus is an in-process publish/subscribe channel. Publish never blocks: a
// subscriber that stopped draining loses events, which is acceptable because
// every event only means "refetch".
type Bus struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[*subscriber]struct{}),
	}
}

// Subscribe registers interest in the given topics (all topics when none are
// given). The returned cancel func must be called to release the subscription.
func (b *Bus) Subscribe(buffer int, topics ...Topic) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 8
	}
	sub := &subscriber{
		ch: make(chan Event, buffer),
	}
	if len(topics) > 0 {
		sub.topics = make(map[Topic]struct{}, len(topics))
		for _, t := range topics {
			sub.topics[t] = struct{}{}
		}
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, sub)
			b.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

func (b *Bus) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs {
		if sub.topics != nil {
			if _, ok := sub.topics[event.Topic]; !ok {
				continue
			}
		}
		select {
		case sub.ch <- event:
		default:
			// Slow subscriber; dropping is safe since events are refetch hints.
		}
	}
}

// SubscriberCount is used by tests and the websocket handler's health view.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
