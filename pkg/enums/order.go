package enums

import "fmt"

// OrderStatus tracks the order lifecycle as reported by the source platform.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusClosed    OrderStatus = "CLOSED"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusCreated,
	OrderStatusCancelled,
	OrderStatusClosed,
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}

// FinancialStatus tracks payment state on an ingested order.
type FinancialStatus string

const (
	FinancialStatusUnknown           FinancialStatus = "UNKNOWN"
	FinancialStatusPending           FinancialStatus = "PENDING"
	FinancialStatusPaid              FinancialStatus = "PAID"
	FinancialStatusPartiallyPaid     FinancialStatus = "PARTIALLY_PAID"
	FinancialStatusRefunded          FinancialStatus = "REFUNDED"
	FinancialStatusPartiallyRefunded FinancialStatus = "PARTIALLY_REFUNDED"
	FinancialStatusVoided            FinancialStatus = "VOIDED"
)

var validFinancialStatuses = []FinancialStatus{
	FinancialStatusUnknown,
	FinancialStatusPending,
	FinancialStatusPaid,
	FinancialStatusPartiallyPaid,
	FinancialStatusRefunded,
	FinancialStatusPartiallyRefunded,
	FinancialStatusVoided,
}

// String implements fmt.Stringer.
func (s FinancialStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known FinancialStatus.
func (s FinancialStatus) IsValid() bool {
	for _, candidate := range validFinancialStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseFinancialStatus converts raw input into a FinancialStatus.
func ParseFinancialStatus(value string) (FinancialStatus, error) {
	for _, candidate := range validFinancialStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid financial status %q", value)
}

// OrderFulfillmentStatus is the order-level rollup of fulfillment progress.
type OrderFulfillmentStatus string

const (
	OrderFulfillmentStatusUnfulfilled OrderFulfillmentStatus = "UNFULFILLED"
	OrderFulfillmentStatusPartial     OrderFulfillmentStatus = "PARTIAL"
	OrderFulfillmentStatusFulfilled   OrderFulfillmentStatus = "FULFILLED"
	OrderFulfillmentStatusCancelled   OrderFulfillmentStatus = "CANCELLED"
	OrderFulfillmentStatusUnknown     OrderFulfillmentStatus = "UNKNOWN"
)

var validOrderFulfillmentStatuses = []OrderFulfillmentStatus{
	OrderFulfillmentStatusUnfulfilled,
	OrderFulfillmentStatusPartial,
	OrderFulfillmentStatusFulfilled,
	OrderFulfillmentStatusCancelled,
	OrderFulfillmentStatusUnknown,
}

// String implements fmt.Stringer.
func (s OrderFulfillmentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderFulfillmentStatus.
func (s OrderFulfillmentStatus) IsValid() bool {
	for _, candidate := range validOrderFulfillmentStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseOrderFulfillmentStatus converts raw input into an OrderFulfillmentStatus.
func ParseOrderFulfillmentStatus(value string) (OrderFulfillmentStatus, error) {
	for _, candidate := range validOrderFulfillmentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fulfillment status %q", value)
}
