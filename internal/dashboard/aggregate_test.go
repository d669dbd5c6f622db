package dashboard

import (
	"testing"
	"time"

	"qrmenu-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderAt(t time.Time, amount float64, status models.OrderStatus) models.Order {
	return models.Order{TotalAmount: amount, Status: status, CreatedAt: t}
}

func TestTodaysRevenueOnlyCurrentDay(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.Local)
	orders := []models.Order{
		orderAt(now.Add(-2*time.Hour), 250, models.OrderStatusPaid),
		orderAt(now.Add(-5*time.Hour), 100, models.OrderStatusPending),
		orderAt(now.AddDate(0, 0, -1), 999, models.OrderStatusPaid), // dün
	}

	assert.Equal(t, 350.0, TodaysRevenue(orders, now))
}

func TestTodaysRevenueDayBoundary(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 10, 0, 0, time.Local)
	orders := []models.Order{
		orderAt(time.Date(2026, 8, 29, 0, 1, 0, 0, time.Local), 50, models.OrderStatusPending),
		orderAt(time.Date(2026, 8, 28, 23, 59, 0, 0, time.Local), 80, models.OrderStatusPaid),
	}

	assert.Equal(t, 50.0, TodaysRevenue(orders, now))
}

func TestActiveOrdersExcludesTerminal(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderAt(now, 10, models.OrderStatusPending),
		orderAt(now, 10, models.OrderStatusPreparing),
		orderAt(now, 10, models.OrderStatusReady),
		orderAt(now, 10, models.OrderStatusServed),
		orderAt(now, 10, models.OrderStatusPaid),
		orderAt(now, 10, models.OrderStatusRejected),
		orderAt(now, 10, models.OrderStatusCancelled),
	}

	assert.Equal(t, 4, ActiveOrders(orders))
}

func TestTopItemsSumsQuantities(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{{Name: "Çay", Quantity: 3}}},
		{Items: []models.OrderItem{{Name: "Çay", Quantity: 1}, {Name: "Kahve", Quantity: 2}}},
	}

	top := TopItems(orders, 0)

	require.Len(t, top, 2)
	assert.Equal(t, ItemCount{Name: "Çay", Quantity: 4}, top[0])
	assert.Equal(t, ItemCount{Name: "Kahve", Quantity: 2}, top[1])
}

func TestTopItemsTieBrokenByFirstSeen(t *testing.T) {
	// Çay=5 ve Kahve=5 eşit; Çay ilk siparişte göründüğü için önce gelir.
	orders := []models.Order{
		{Items: []models.OrderItem{{Name: "Çay", Quantity: 3}}},
		{Items: []models.OrderItem{{Name: "Çay", Quantity: 2}, {Name: "Kahve", Quantity: 5}}},
	}

	top := TopItems(orders, 1)

	require.Len(t, top, 1)
	assert.Equal(t, ItemCount{Name: "Çay", Quantity: 5}, top[0])
}

func TestTopItemsLimit(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			{Name: "A", Quantity: 1},
			{Name: "B", Quantity: 2},
			{Name: "C", Quantity: 3},
		}},
	}

	top := TopItems(orders, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "C", top[0].Name)
	assert.Equal(t, "B", top[1].Name)
}

func TestRevenuePerHourSingleBucket(t *testing.T) {
	orders := []models.Order{
		orderAt(time.Date(2026, 8, 29, 9, 15, 0, 0, time.Local), 120, models.OrderStatusPaid),
		orderAt(time.Date(2026, 8, 29, 9, 45, 0, 0, time.Local), 80, models.OrderStatusPending),
		orderAt(time.Date(2026, 8, 29, 18, 0, 0, 0, time.Local), 200, models.OrderStatusPaid),
	}

	buckets := RevenuePerHour(orders)

	assert.Equal(t, 200.0, buckets[9])
	assert.Equal(t, 200.0, buckets[18])

	var total float64
	for _, v := range buckets {
		total += v
	}
	// Tutar tek kovaya yazılır, bölünmez: toplam korunur
	assert.Equal(t, 400.0, total)
}
