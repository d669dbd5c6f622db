package order

import (
	"testing"

	"qrmenu-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionForwardEdges(t *testing.T) {
	assert.True(t, CanTransition(models.OrderStatusPending, models.OrderStatusPreparing))
	assert.True(t, CanTransition(models.OrderStatusPreparing, models.OrderStatusReady))
	assert.True(t, CanTransition(models.OrderStatusPreparing, models.OrderStatusServed))
	assert.True(t, CanTransition(models.OrderStatusReady, models.OrderStatusPaid))
	assert.True(t, CanTransition(models.OrderStatusServed, models.OrderStatusPaid))
}

func TestCanTransitionSideExits(t *testing.T) {
	assert.True(t, CanTransition(models.OrderStatusPending, models.OrderStatusRejected))

	// Terminal olmayan her durumdan iptale çıkılabilir
	for _, from := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusServed,
	} {
		assert.True(t, CanTransition(from, models.OrderStatusCancelled), "from=%s", from)
	}
}

func TestCanTransitionRejectsSkips(t *testing.T) {
	// Atlama yasak: pending doğrudan paid olamaz
	assert.False(t, CanTransition(models.OrderStatusPending, models.OrderStatusPaid))
	assert.False(t, CanTransition(models.OrderStatusPending, models.OrderStatusReady))
	assert.False(t, CanTransition(models.OrderStatusPending, models.OrderStatusServed))
}

func TestCanTransitionRejectsReversals(t *testing.T) {
	assert.False(t, CanTransition(models.OrderStatusPreparing, models.OrderStatusPending))
	assert.False(t, CanTransition(models.OrderStatusReady, models.OrderStatusPreparing))
	assert.False(t, CanTransition(models.OrderStatusServed, models.OrderStatusReady))
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	terminals := []models.OrderStatus{
		models.OrderStatusPaid,
		models.OrderStatusRejected,
		models.OrderStatusCancelled,
	}
	all := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusServed,
		models.OrderStatusPaid,
		models.OrderStatusRejected,
		models.OrderStatusCancelled,
	}

	for _, from := range terminals {
		assert.True(t, from.Terminal())
		for _, to := range all {
			assert.False(t, CanTransition(from, to), "%s -> %s terminalden çıkış olmamalı", from, to)
		}
	}
}

func TestRejectedOnlyFromPending(t *testing.T) {
	assert.False(t, CanTransition(models.OrderStatusPreparing, models.OrderStatusRejected))
	assert.False(t, CanTransition(models.OrderStatusReady, models.OrderStatusRejected))
	assert.False(t, CanTransition(models.OrderStatusServed, models.OrderStatusRejected))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(models.OrderStatusPending))
	assert.True(t, ValidStatus(models.OrderStatusCancelled))
	assert.False(t, ValidStatus(models.OrderStatus("delivered")))
	assert.False(t, ValidStatus(models.OrderStatus("")))
}

func TestComputeTotal(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Çay", Price: 100, Quantity: 2},
		{Name: "Kahve", Price: 50, Quantity: 1},
	}
	assert.Equal(t, 250.0, ComputeTotal(items))
}

func TestComputeTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ComputeTotal(nil))
}
