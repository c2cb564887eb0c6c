package model

type OrderStatus string

const (
	StatusPending      OrderStatus = "pending"
	StatusPaid         OrderStatus = "paid"
	StatusProduction   OrderStatus = "production"
	StatusQualityCheck OrderStatus = "quality_check"
	StatusShipped      OrderStatus = "shipped"
	StatusDelivered    OrderStatus = "delivered"
	StatusCancelled    OrderStatus = "cancelled"
)

// legalTransitions is the forward-moving fulfilment chain. Cancellation is
// allowed up to the moment the parcel leaves the warehouse; delivered and
// cancelled are terminal.
var legalTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:      {StatusPaid, StatusCancelled},
	StatusPaid:         {StatusProduction, StatusCancelled},
	StatusProduction:   {StatusQualityCheck, StatusCancelled},
	StatusQualityCheck: {StatusShipped, StatusCancelled},
	StatusShipped:      {StatusDelivered},
	StatusDelivered:    {},
	StatusCancelled:    {},
}

func (s OrderStatus) Valid() bool {
	_, ok := legalTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
