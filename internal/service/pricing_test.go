package service

import (
	"testing"

	"lyra-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCart(t *testing.T) {
	prices := map[string]int64{"p1": 2500, "p2": 12000}

	total, err := priceCart([]model.CartLine{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}, prices)

	require.NoError(t, err)
	assert.Equal(t, int64(17000), total)
}

func TestPriceCart_UnknownProduct(t *testing.T) {
	prices := map[string]int64{"p1": 2500}

	_, err := priceCart([]model.CartLine{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "ghost", Quantity: 1},
	}, prices)

	var unknown *UnknownProductError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.ProductID)
}

func TestPriceCart_Empty(t *testing.T) {
	total, err := priceCart(nil, map[string]int64{})

	require.NoError(t, err)
	assert.Zero(t, total)
}
