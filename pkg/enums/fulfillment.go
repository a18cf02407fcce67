package enums

import "fmt"

// FulfillmentStatus tracks a single shipment-level fulfillment record.
type FulfillmentStatus string

const (
	FulfillmentStatusCreated   FulfillmentStatus = "CREATED"
	FulfillmentStatusShipped   FulfillmentStatus = "SHIPPED"
	FulfillmentStatusDelivered FulfillmentStatus = "DELIVERED"
	FulfillmentStatusCancelled FulfillmentStatus = "CANCELLED"
	FulfillmentStatusFailed    FulfillmentStatus = "FAILED"
	FulfillmentStatusUnknown   FulfillmentStatus = "UNKNOWN"
)

var validFulfillmentStatuses = []FulfillmentStatus{
	FulfillmentStatusCreated,
	FulfillmentStatusShipped,
	FulfillmentStatusDelivered,
	FulfillmentStatusCancelled,
	FulfillmentStatusFailed,
	FulfillmentStatusUnknown,
}

// String implements fmt.Stringer.
func (s FulfillmentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known FulfillmentStatus.
func (s FulfillmentStatus) IsValid() bool {
	for _, candidate := range validFulfillmentStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseFulfillmentStatus converts raw input into a FulfillmentStatus.
func ParseFulfillmentStatus(value string) (FulfillmentStatus, error) {
	for _, candidate := range validFulfillmentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fulfillment status %q", value)
}
