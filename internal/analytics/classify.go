package analytics

import "qrmenu-backend/internal/models"

// Summary ziyaret olaylarının sınıflandırılmış özeti.
type Summary struct {
	Total          int                     `json:"total"`
	ByType         map[models.ScanType]int `json:"by_type"`
	UniqueSessions int                     `json:"unique_sessions"`
}

func knownSession(id string) bool {
	return id != "" && id != models.UnknownSession
}

// Classify toplam/tip/tekil ziyaretçi sayımlarını çıkarır.
// Session id'si olmayan olaylar toplamda tek tek sayılır ama hiçbir zaman
// "tekil ziyaretçi" olarak birleşmez.
func Classify(events []models.ScanEvent) Summary {
	s := Summary{
		Total:  len(events),
		ByType: make(map[models.ScanType]int),
	}

	sessions := make(map[string]struct{})
	for _, ev := range events {
		s.ByType[ev.Type]++
		if knownSession(ev.SessionID) {
			sessions[ev.SessionID] = struct{}{}
		}
	}
	s.UniqueSessions = len(sessions)
	return s
}

// DedupeBySession her bilinen session için girişteki ilk olayı tutar,
// sırayı korur. Girdi en yeniden eskiye sıralıysa sonuç "ziyaretçi başına
// en son olay" olur. Bilinmeyen session'lı olayların hepsi kalır.
func DedupeBySession(events []models.ScanEvent) []models.ScanEvent {
	seen := make(map[string]struct{})
	out := make([]models.ScanEvent, 0, len(events))

	for _, ev := range events {
		if !knownSession(ev.SessionID) {
			out = append(out, ev)
			continue
		}
		if _, ok := seen[ev.SessionID]; ok {
			continue
		}
		seen[ev.SessionID] = struct{}{}
		out = append(out, ev)
	}
	return out
}
