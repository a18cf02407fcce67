package enums

import "fmt"

// TrackingStatus mirrors the carrier-reported shipment state.
type TrackingStatus string

const (
	TrackingStatusLabelCreated   TrackingStatus = "LABEL_CREATED"
	TrackingStatusInTransit      TrackingStatus = "IN_TRANSIT"
	TrackingStatusOutForDelivery TrackingStatus = "OUT_FOR_DELIVERY"
	TrackingStatusDelivered      TrackingStatus = "DELIVERED"
	TrackingStatusException      TrackingStatus = "EXCEPTION"
	TrackingStatusUnknown        TrackingStatus = "UNKNOWN"
)

var validTrackingStatuses = []TrackingStatus{
	TrackingStatusLabelCreated,
	TrackingStatusInTransit,
	TrackingStatusOutForDelivery,
	TrackingStatusDelivered,
	TrackingStatusException,
	TrackingStatusUnknown,
}

// String implements fmt.Stringer.
func (s TrackingStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known TrackingStatus.
func (s TrackingStatus) IsValid() bool {
	for _, candidate := range validTrackingStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseTrackingStatus converts raw input into a TrackingStatus.
func ParseTrackingStatus(value string) (TrackingStatus, error) {
	for _, candidate := range validTrackingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tracking status %q", value)
}
