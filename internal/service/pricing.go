package service

import "lyra-storefront/internal/model"

// priceCart computes an order total in integer cents from catalog prices.
// Shared by the checkout and webhook paths so both always bill from the same
// numbers; client-submitted prices never reach this function.
func priceCart(lines []model.CartLine, priceByID map[string]int64) (int64, error) {
	var total int64
	for _, line := range lines {
		price, ok := priceByID[line.ProductID]
		if !ok {
			return 0, &UnknownProductError{ProductID: line.ProductID}
		}
		total += price * line.Quantity
	}
	return total, nil
}

func priceMap(products []*model.Product) map[string]int64 {
	m := make(map[string]int64, len(products))
	for _, p := range products {
		m[p.ID] = p.Price
	}
	return m
}
