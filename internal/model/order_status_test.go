package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusPaid, true},
		{StatusPaid, StatusProduction, true},
		{StatusProduction, StatusQualityCheck, true},
		{StatusQualityCheck, StatusShipped, true},
		{StatusShipped, StatusDelivered, true},
		{StatusPending, StatusCancelled, true},
		{StatusQualityCheck, StatusCancelled, true},

		// no skipping forward
		{StatusPaid, StatusShipped, false},
		{StatusPending, StatusDelivered, false},
		// no moving backward
		{StatusShipped, StatusProduction, false},
		{StatusPaid, StatusPending, false},
		// shipped parcels cannot be cancelled
		{StatusShipped, StatusCancelled, false},
		// terminal states stay terminal
		{StatusDelivered, StatusShipped, false},
		{StatusCancelled, StatusPaid, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, StatusQualityCheck.Valid())
	assert.False(t, OrderStatus("refunded").Valid())
	assert.False(t, OrderStatus("").Valid())
}
