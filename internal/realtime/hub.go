// Package realtime: sipariş ve bildirim değişikliklerini personel
// ekranlarına anlık ileten süreç içi yayın merkezi. Taşıma katmanı
// (SSE) değiştirilebilir, servisler sadece Publish çağırır.
package realtime

import "sync"

type Event struct {
	Topic   string `json:"topic"` // "orders" | "notifications"
	Action  string `json:"action"`
	Payload any    `json:"payload,omitempty"`
}

const (
	TopicOrders        = "orders"
	TopicNotifications = "notifications"
)

type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe yeni bir dinleyici kanalı açar. Dönen fonksiyon aboneliği
// kapatır; çağıran kapanışta mutlaka çağırmalı.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish bloklamaz: yavaş bir dinleyicinin dolu kuyruğu yayını
// durduramaz, olay o dinleyici için düşer.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
