package domain

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// IPv4Address is a four-octet IPv4 value, most-significant octet first.
type IPv4Address [4]byte

// ParseIPv4Address parses a dotted-decimal string into an IPv4Address.
// The string must contain exactly four dot-separated parts, each an
// unsigned integer in [0,255].
func ParseIPv4Address(s string) (IPv4Address, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return IPv4Address{}, fmt.Errorf("%w: %q has %d octets, want 4", ErrInvalidAddressFormat, s, len(parts))
	}

	var addr IPv4Address
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return IPv4Address{}, fmt.Errorf("%w: octet %d (%q) is not in [0,255]", ErrInvalidOctetValue, i+1, part)
		}
		addr[i] = byte(v)
	}

	return addr, nil
}

// String returns the dotted-decimal form.
func (a IPv4Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// Addr converts to the standard library address type.
func (a IPv4Address) Addr() netip.Addr {
	return netip.AddrFrom4(a)
}

// WithLastOctet returns a copy with the last octet replaced.
func (a IPv4Address) WithLastOctet(v byte) IPv4Address {
	a[3] = v
	return a
}
