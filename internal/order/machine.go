package order

import "qrmenu-backend/internal/models"

// Sipariş durum makinesi. Mutfak akışı ileri yönlüdür:
//
//	pending -> preparing -> ready|served -> paid
//
// Yan çıkışlar: pending -> rejected, terminal olmayan her durum -> cancelled.
// paid/rejected/cancelled terminaldir, çıkışı yoktur.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending: {
		models.OrderStatusPreparing,
		models.OrderStatusRejected,
		models.OrderStatusCancelled,
	},
	models.OrderStatusPreparing: {
		models.OrderStatusReady,
		models.OrderStatusServed,
		models.OrderStatusCancelled,
	},
	models.OrderStatusReady: {
		models.OrderStatusPaid,
		models.OrderStatusCancelled,
	},
	models.OrderStatusServed: {
		models.OrderStatusPaid,
		models.OrderStatusCancelled,
	},
}

// CanTransition sadece makinedeki kenarlar için true döner.
// Atlama (pending -> paid) veya geri dönüş her zaman false.
func CanTransition(from, to models.OrderStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidStatus dışarıdan gelen durum string'inin bilinen bir durum olup
// olmadığını kontrol eder.
func ValidStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusPending, models.OrderStatusPreparing,
		models.OrderStatusReady, models.OrderStatusServed,
		models.OrderStatusPaid, models.OrderStatusRejected,
		models.OrderStatusCancelled:
		return true
	}
	return false
}

// ComputeTotal sipariş tutarını kalem kopyalarından hesaplar.
// İstemciden gelen toplam hiçbir zaman kullanılmaz.
func ComputeTotal(items []models.OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
