// Package feed implements the subscription feeds that mirror a user's
// collections to clients: every mutation produces a full snapshot that
// replaces whatever a subscriber held before.
//
// A Subscription owns a channel with capacity one. When a new snapshot
// arrives before the previous one was consumed, the previous one is
// dropped: delivery is latest-wins, there is no incremental patching.
// Independent feeds have no ordering guarantee between each other.
package feed

import "sync"

// Hub fans snapshots out to all subscriptions of a topic.
type Hub[T any] struct {
	metricName  string
	mu          sync.Mutex
	subscribers map[string]map[*Subscription[T]]struct{}
}

// NewHub returns an empty hub. The name labels the hub's metrics.
func NewHub[T any](name string) *Hub[T] {
	return &Hub[T]{
		metricName:  name,
		subscribers: make(map[string]map[*Subscription[T]]struct{}),
	}
}

// Subscription is one consumer's handle on a topic. Stop must be called
// when the owning session ends; a stopped subscription receives nothing.
type Subscription[T any] struct {
	hub   *Hub[T]
	topic string
	ch    chan T
	once  sync.Once
}

// C returns the channel snapshots are delivered on. It is closed by Stop.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Stop unsubscribes and closes the channel. It is idempotent.
func (s *Subscription[T]) Stop() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()

		if subs, ok := s.hub.subscribers[s.topic]; ok {
			delete(subs, s)
			if len(subs) == 0 {
				delete(s.hub.subscribers, s.topic)
			}
		}

		activeSubscriptions.WithLabelValues(s.hub.metricName).Dec()
		close(s.ch)
	})
}

// Subscribe registers a new subscription on the topic. The initial
// snapshot is queued immediately so that consumers always start from the
// current state.
func (h *Hub[T]) Subscribe(topic string, initial T) *Subscription[T] {
	sub := &Subscription[T]{
		hub:   h,
		topic: topic,
		ch:    make(chan T, 1),
	}
	sub.ch <- initial

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[topic]; !ok {
		h.subscribers[topic] = make(map[*Subscription[T]]struct{})
	}
	h.subscribers[topic][sub] = struct{}{}
	activeSubscriptions.WithLabelValues(h.metricName).Inc()

	return sub
}

// Publish replaces the pending snapshot of every subscription on the topic.
func (h *Hub[T]) Publish(topic string, snapshot T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers[topic] {
		sub.deliver(snapshot)
	}
}

// PublishMatching replaces the pending snapshot of every subscription whose
// topic passes the match function. The snapshot for each topic is produced
// lazily so scoped topics can receive a filtered view.
func (h *Hub[T]) PublishMatching(match func(topic string) bool, snapshot func(topic string) T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic, subs := range h.subscribers {
		if !match(topic) {
			continue
		}

		value := snapshot(topic)
		for sub := range subs {
			sub.deliver(value)
		}
	}
}

// Subscribers returns the number of active subscriptions on the topic.
func (h *Hub[T]) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subscribers[topic])
}

// deliver must be called with the hub lock held.
func (s *Subscription[T]) deliver(snapshot T) {
	// Drop the undelivered snapshot, if any, then queue the new one.
	select {
	case <-s.ch:
	default:
	}

	s.ch <- snapshot
	snapshotsDelivered.WithLabelValues(s.hub.metricName).Inc()
}
