package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the only currency the storefront sells in.
const Currency = "KES"

// FormatPrice renders an amount as "KES 1500.00".
func FormatPrice(amount decimal.Decimal) string {
	return Currency + " " + amount.StringFixed(2)
}

// Address is a bare sender number with the gateway channel prefix removed.
type Address string

// NormalizeAddress strips a channel prefix such as "whatsapp:" from a raw
// gateway address.
func NormalizeAddress(raw string) Address {
	raw = strings.TrimSpace(raw)
	if _, after, found := strings.Cut(raw, ":"); found {
		return Address(strings.TrimSpace(after))
	}
	return Address(raw)
}

func (a Address) String() string {
	return string(a)
}

// WhatsAppChannel is the gateway channel prefix for outbound sends.
const WhatsAppChannel = "whatsapp:"

// ChannelAddress returns the gateway form of a bare number.
func (a Address) ChannelAddress() string {
	return WhatsAppChannel + string(a)
}
