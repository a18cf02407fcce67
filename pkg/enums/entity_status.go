package enums

import "fmt"

// EntityStatus is the shared active/inactive lifecycle for tenants and stores.
type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "ACTIVE"
	EntityStatusInactive EntityStatus = "INACTIVE"
)

var validEntityStatuses = []EntityStatus{
	EntityStatusActive,
	EntityStatusInactive,
}

// String implements fmt.Stringer.
func (s EntityStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known EntityStatus.
func (s EntityStatus) IsValid() bool {
	for _, candidate := range validEntityStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseEntityStatus converts raw input into an EntityStatus.
func ParseEntityStatus(value string) (EntityStatus, error) {
	for _, candidate := range validEntityStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid status %q", value)
}
