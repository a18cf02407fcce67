package enums

import "fmt"

// StorePlatform identifies the commerce platform a store is ingested from.
type StorePlatform string

const (
	StorePlatformShopify  StorePlatform = "SHOPIFY"
	StorePlatformNetsuite StorePlatform = "NETSUITE"
	StorePlatformCustom   StorePlatform = "CUSTOM"
	StorePlatformMagento  StorePlatform = "MAGENTO"
	StorePlatformOther    StorePlatform = "OTHER"
)

var validStorePlatforms = []StorePlatform{
	StorePlatformShopify,
	StorePlatformNetsuite,
	StorePlatformCustom,
	StorePlatformMagento,
	StorePlatformOther,
}

// String implements fmt.Stringer.
func (p StorePlatform) String() string {
	return string(p)
}

// IsValid reports whether the value is a known StorePlatform.
func (p StorePlatform) IsValid() bool {
	for _, candidate := range validStorePlatforms {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseStorePlatform converts raw input into a StorePlatform.
func ParseStorePlatform(value string) (StorePlatform, error) {
	for _, candidate := range validStorePlatforms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid store platform %q", value)
}
