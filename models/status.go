package models

// Label is the customer-facing name for an order status.
func (s OrderStatus) Label() string {
	switch s {
	case OrderPending:
		return "Processing"
	case OrderAwaitingReqs:
		return "Action Needed"
	case OrderInProgress:
		return "In Production"
	case OrderShipped:
		return "Shipped"
	case OrderCompleted:
		return "Delivered"
	default:
		return string(s)
	}
}

// BadgeClass picks the CSS class for the status pill; AWAITING_REQUIREMENTS
// must look different from everything else, it is the one state that needs
// the customer to act.
func (s OrderStatus) BadgeClass() string {
	switch s {
	case OrderPending:
		return "badge-pending"
	case OrderAwaitingReqs:
		return "badge-action"
	case OrderInProgress:
		return "badge-progress"
	case OrderShipped:
		return "badge-shipped"
	case OrderCompleted:
		return "badge-done"
	default:
		return "badge-pending"
	}
}
