package broker

import (
	"sync"

	"github.com/google/uuid"

	"mindi/internal/negotiation"
)

// Broker fans committed mutations out to subscribers of a negotiation.
// Delivery is at-least-once and in commit order per subscriber; nothing is
// guaranteed across different subscribers. Publish never blocks on a slow
// consumer: each subscriber owns an unbounded queue drained by its own pump
// goroutine.
type Broker struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[uint64]*subscriber
	nextID uint64
}

type subscriber struct {
	mu      sync.Mutex
	queue   []negotiation.NegotiationUpdate
	wake    chan struct{} // 1-buffered doorbell
	done    chan struct{}
	out     chan negotiation.NegotiationUpdate
	stopped bool
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[uuid.UUID]map[uint64]*subscriber),
	}
}

// Subscribe registers interest in negotiationID. The returned cancel stops
// delivery for this subscriber only; the session itself is untouched.
func (b *Broker) Subscribe(negotiationID uuid.UUID) (<-chan negotiation.NegotiationUpdate, negotiation.UnsubscribeFunc) {
	sub := &subscriber{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		out:  make(chan negotiation.NegotiationUpdate, 16),
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	if b.subs[negotiationID] == nil {
		b.subs[negotiationID] = make(map[uint64]*subscriber)
	}
	b.subs[negotiationID][id] = sub
	b.mu.Unlock()

	go sub.pump()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[negotiationID]; ok {
			if s, ok := set[id]; ok {
				delete(set, id)
				if len(set) == 0 {
					delete(b.subs, negotiationID)
				}
				s.stop()
			}
		}
		b.mu.Unlock()
	}
	return sub.out, cancel
}

// Publish enqueues the update for every subscriber registered at commit
// time. Callers publish while holding the session's key lock, so enqueue
// order matches commit order.
func (b *Broker) Publish(update negotiation.NegotiationUpdate) {
	b.mu.Lock()
	set := b.subs[update.NegotiationID]
	targets := make([]*subscriber, 0, len(set))
	for _, s := range set {
		targets = append(targets, s)
	}
	b.mu.Unlock()

	for _, s := range targets {
		s.enqueue(update)
	}
}

// SubscriberCount is used by tests and by operational logging.
func (b *Broker) SubscriberCount(negotiationID uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[negotiationID])
}

func (s *subscriber) enqueue(update negotiation.NegotiationUpdate) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, update)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	close(s.done)
}

// pump drains the queue into the out channel, preserving enqueue order.
func (s *subscriber) pump() {
	defer close(s.out)
	for {
		s.mu.Lock()
		var next *negotiation.NegotiationUpdate
		if len(s.queue) > 0 {
			next = &s.queue[0]
			s.queue = s.queue[1:]
		}
		s.mu.Unlock()

		if next == nil {
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}

		select {
		case s.out <- *next:
		case <-s.done:
			return
		}
	}
}
