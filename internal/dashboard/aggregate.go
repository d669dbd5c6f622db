package dashboard

import (
	"sort"
	"time"

	"qrmenu-backend/internal/models"
)

// Bu dosyadaki fonksiyonlar salt okunur türetmelerdir: sipariş verisini
// alır, hiçbir şeyi mutasyona uğratmadan özet çıkarır.

// SameLocalDay iki zamanın sunucu yerel saat diliminde aynı takvim gününe
// düşüp düşmediğini söyler.
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// TodaysRevenue verilen günün takvim gününe düşen siparişlerin toplam tutarı.
func TodaysRevenue(orders []models.Order, now time.Time) float64 {
	var total float64
	for _, o := range orders {
		if SameLocalDay(o.CreatedAt, now) {
			total += o.TotalAmount
		}
	}
	return total
}

// ActiveOrders terminal durumda olmayan sipariş sayısı.
func ActiveOrders(orders []models.Order) int {
	count := 0
	for _, o := range orders {
		if !o.Status.Terminal() {
			count++
		}
	}
	return count
}

type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// TopItems ürün adı -> toplam adet, çoktan aza. Eşitlikte ilk görülen
// kazanır: siparişler verildikleri sırayla gezilir, bir ürünün sırası ilk
// geçtiği yere göre sabitlenir.
func TopItems(orders []models.Order, n int) []ItemCount {
	totals := make(map[string]int)
	firstSeen := make(map[string]int)
	next := 0

	for _, o := range orders {
		for _, it := range o.Items {
			if _, ok := firstSeen[it.Name]; !ok {
				firstSeen[it.Name] = next
				next++
			}
			totals[it.Name] += it.Quantity
		}
	}

	out := make([]ItemCount, 0, len(totals))
	for name, qty := range totals {
		out = append(out, ItemCount{Name: name, Quantity: qty})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return firstSeen[out[i].Name] < firstSeen[out[j].Name]
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// RevenuePerHour 24 kovalık saatlik ciro dizisi. Siparişin tüm tutarı
// oluşturulduğu saatin kovasına yazılır, kovalar arasında bölünmez.
func RevenuePerHour(orders []models.Order) [24]float64 {
	var buckets [24]float64
	for _, o := range orders {
		buckets[o.CreatedAt.Local().Hour()] += o.TotalAmount
	}
	return buckets
}
