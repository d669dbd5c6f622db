package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(Event{Topic: TopicOrders, Action: "placed"})

	select {
	case ev := <-ch:
		assert.Equal(t, TopicOrders, ev.Topic)
		assert.Equal(t, "placed", ev.Action)
	case <-time.After(time.Second):
		t.Fatal("olay gelmedi")
	}
}

func TestHubCancelRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe()
	require.Equal(t, 1, hub.SubscriberCount())

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount())

	// İkinci cancel güvenli olmalı
	cancel()
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHubSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe() // kimse okumuyor
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Kuyruk kapasitesinin üstünde yayın: bloklanmamalı, olaylar düşer
		for i := 0; i < 100; i++ {
			hub.Publish(Event{Topic: TopicNotifications, Action: "raised"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish bloklandı")
	}
}
