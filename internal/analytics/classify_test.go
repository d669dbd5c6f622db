package analytics

import (
	"testing"
	"time"

	"qrmenu-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(session string, typ models.ScanType, t time.Time) models.ScanEvent {
	return models.ScanEvent{SessionID: session, Type: typ, CreatedAt: t}
}

func TestClassifyCounts(t *testing.T) {
	now := time.Now()
	events := []models.ScanEvent{
		event("a", models.ScanTypeTableQR, now),
		event("a", models.ScanTypeTableQR, now.Add(-time.Minute)),
		event("b", models.ScanTypeAppQR, now.Add(-2*time.Minute)),
		event("unknown", models.ScanTypeManual, now.Add(-3*time.Minute)),
		event("unknown", models.ScanTypeManual, now.Add(-4*time.Minute)),
	}

	s := Classify(events)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.ByType[models.ScanTypeTableQR])
	assert.Equal(t, 1, s.ByType[models.ScanTypeAppQR])
	assert.Equal(t, 2, s.ByType[models.ScanTypeManual])
	// unknown olaylar tekil ziyaretçi sayılmaz, aralarında da birleşmez
	assert.Equal(t, 2, s.UniqueSessions)
}

func TestClassifyEmpty(t *testing.T) {
	s := Classify(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.UniqueSessions)
}

func TestDedupeBySessionKeepsLatestPerVisitor(t *testing.T) {
	// Girdi en yeniden eskiye: a(t=2), a(t=1), b(t=1)
	t2 := time.Date(2026, 8, 29, 12, 2, 0, 0, time.Local)
	t1 := time.Date(2026, 8, 29, 12, 1, 0, 0, time.Local)
	events := []models.ScanEvent{
		event("a", models.ScanTypeTableQR, t2),
		event("a", models.ScanTypeTableQR, t1),
		event("b", models.ScanTypeAppQR, t1),
	}

	out := DedupeBySession(events)

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].SessionID)
	assert.Equal(t, t2, out[0].CreatedAt) // a'nın en yenisi kaldı
	assert.Equal(t, "b", out[1].SessionID)
}

func TestDedupeBySessionKeepsAllUnknown(t *testing.T) {
	now := time.Now()
	events := []models.ScanEvent{
		event("unknown", models.ScanTypeManual, now),
		event("", models.ScanTypeManual, now.Add(-time.Minute)),
		event("unknown", models.ScanTypeManual, now.Add(-2*time.Minute)),
	}

	out := DedupeBySession(events)
	assert.Len(t, out, 3)
}

func TestDedupeBySessionPreservesOrder(t *testing.T) {
	now := time.Now()
	events := []models.ScanEvent{
		event("c", models.ScanTypeTableQR, now),
		event("a", models.ScanTypeTableQR, now.Add(-time.Minute)),
		event("c", models.ScanTypeTableQR, now.Add(-2*time.Minute)),
		event("b", models.ScanTypeTableQR, now.Add(-3*time.Minute)),
	}

	out := DedupeBySession(events)

	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].SessionID)
	assert.Equal(t, "a", out[1].SessionID)
	assert.Equal(t, "b", out[2].SessionID)
}
