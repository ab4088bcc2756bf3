package broker

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindi/internal/negotiation"
	"mindi/internal/negotiation/model"
)

func update(id uuid.UUID, version int64) negotiation.NegotiationUpdate {
	return negotiation.NegotiationUpdate{
		NegotiationID: id,
		Version:       version,
		Status:        model.StatusActive,
		CommittedAt:   time.Now(),
	}
}

func recv(t *testing.T, ch <-chan negotiation.NegotiationUpdate) negotiation.NegotiationUpdate {
	t.Helper()
	select {
	case u, ok := <-ch:
		require.True(t, ok, "channel closed before update arrived")
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
		return negotiation.NegotiationUpdate{}
	}
}

func Test_OneUpdatePerSubscriber(t *testing.T) {
	b := NewBroker()
	id := uuid.New()

	ch1, cancel1 := b.Subscribe(id)
	ch2, cancel2 := b.Subscribe(id)
	defer cancel1()
	defer cancel2()

	b.Publish(update(id, 1))

	u1 := recv(t, ch1)
	u2 := recv(t, ch2)
	assert.Equal(t, int64(1), u1.Version)
	assert.Equal(t, int64(1), u2.Version)

	// exactly one each
	select {
	case extra := <-ch1:
		t.Fatalf("unexpected second update: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func Test_PerSubscriberOrder(t *testing.T) {
	b := NewBroker()
	id := uuid.New()

	ch, cancel := b.Subscribe(id)
	defer cancel()

	const total = 200
	for v := int64(1); v <= total; v++ {
		b.Publish(update(id, v))
	}

	for v := int64(1); v <= total; v++ {
		got := recv(t, ch)
		require.Equal(t, v, got.Version, "updates must arrive in publish order")
	}
}

func Test_CancelStopsDelivery(t *testing.T) {
	b := NewBroker()
	id := uuid.New()

	ch, cancel := b.Subscribe(id)
	require.Equal(t, 1, b.SubscriberCount(id))

	cancel()
	assert.Equal(t, 0, b.SubscriberCount(id))

	// Publishing after cancel must neither panic nor deliver.
	b.Publish(update(id, 1))

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return // channel closed, nothing delivered
			}
			t.Fatal("update delivered after cancel")
		case <-deadline:
			t.Fatal("channel never closed after cancel")
		}
	}
}

func Test_OtherNegotiationNotDelivered(t *testing.T) {
	b := NewBroker()
	id, other := uuid.New(), uuid.New()

	ch, cancel := b.Subscribe(id)
	defer cancel()

	b.Publish(update(other, 1))
	b.Publish(update(id, 1))

	got := recv(t, ch)
	assert.Equal(t, id, got.NegotiationID)
}

func Test_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	b := NewBroker()
	id := uuid.New()

	_, cancelSlow := b.Subscribe(id) // never reads
	defer cancelSlow()
	chFast, cancelFast := b.Subscribe(id)
	defer cancelFast()

	done := make(chan struct{})
	go func() {
		for v := int64(1); v <= 100; v++ {
			b.Publish(update(id, v))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	got := recv(t, chFast)
	assert.Equal(t, int64(1), got.Version)
}
