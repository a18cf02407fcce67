package enums

import "testing"

func TestParseEntityStatus(t *testing.T) {
	status, err := ParseEntityStatus("ACTIVE")
	if err != nil {
		t.Fatalf("parse active: %v", err)
	}
	if status != EntityStatusActive {
		t.Fatalf("expected ACTIVE got %s", status)
	}

	if _, err := ParseEntityStatus("active"); err == nil {
		t.Fatal("expected lowercase value to be rejected")
	}
	if _, err := ParseEntityStatus(""); err == nil {
		t.Fatal("expected empty value to be rejected")
	}
}

func TestParseStorePlatformRejectsUnknown(t *testing.T) {
	if _, err := ParseStorePlatform("WOOCOMMERCE"); err == nil {
		t.Fatal("expected unknown platform to be rejected")
	}
	platform, err := ParseStorePlatform("SHOPIFY")
	if err != nil {
		t.Fatalf("parse shopify: %v", err)
	}
	if !platform.IsValid() {
		t.Fatalf("expected %s to be valid", platform)
	}
}

func TestFinancialStatusCoversAllValues(t *testing.T) {
	values := []string{
		"UNKNOWN", "PENDING", "PAID", "PARTIALLY_PAID",
		"REFUNDED", "PARTIALLY_REFUNDED", "VOIDED",
	}
	for _, value := range values {
		status, err := ParseFinancialStatus(value)
		if err != nil {
			t.Fatalf("parse %s: %v", value, err)
		}
		if status.String() != value {
			t.Fatalf("expected %s got %s", value, status)
		}
	}
}

func TestTrackingStatusValidity(t *testing.T) {
	if TrackingStatus("LOST").IsValid() {
		t.Fatal("expected LOST to be invalid")
	}
	if !TrackingStatusOutForDelivery.IsValid() {
		t.Fatal("expected OUT_FOR_DELIVERY to be valid")
	}
}
