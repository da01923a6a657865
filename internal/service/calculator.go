package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dotX12/subnetcalc/internal/domain"
)

// Prefix lengths outside this range are rejected: /0-/7 blocks are larger
// than a single leading octet can express and /32 has no broadcast or
// usable range.
const (
	MinPrefixLength = 8
	MaxPrefixLength = 31
)

// CalculatorService computes subnet parameters from a network address and
// a CIDR prefix length.
type CalculatorService struct {
	logger      zerolog.Logger
	detectClass bool
}

// NewCalculatorService creates a new calculator service. When detectClass
// is set, the result carries the legacy A/B/C class of the network address
// and reserved first octets become an error.
func NewCalculatorService(logger zerolog.Logger, detectClass bool) *CalculatorService {
	return &CalculatorService{
		logger:      logger,
		detectClass: detectClass,
	}
}

// Compute derives the subnet mask, broadcast address, usable host range and
// address counts for the given network address and prefix length. The
// address is trusted as the subnet's base address and is not masked down;
// a base address with host bits set surfaces as ErrBroadcastOverflow.
func (s *CalculatorService) Compute(networkAddress string, prefixLength int) (domain.SubnetInfo, error) {
	network, err := domain.ParseIPv4Address(networkAddress)
	if err != nil {
		return domain.SubnetInfo{}, err
	}

	if prefixLength < MinPrefixLength || prefixLength > MaxPrefixLength {
		return domain.SubnetInfo{}, fmt.Errorf("%w: /%d is outside /%d-/%d",
			domain.ErrUnsupportedPrefixLength, prefixLength, MinPrefixLength, MaxPrefixLength)
	}

	hostBits := 32 - prefixLength
	totalAddresses := 1 << hostBits
	totalHosts := totalAddresses - 2

	wildcard := wildcardMask(prefixLength)
	mask := subnetMask(wildcard)

	s.logger.Debug().
		Str("network", network.String()).
		Int("prefix", prefixLength).
		Str("wildcard", wildcard.String()).
		Str("mask", mask.String()).
		Int("total_addresses", totalAddresses).
		Msg("Derived wildcard and subnet mask")

	broadcast, err := broadcastAddress(network, wildcard)
	if err != nil {
		return domain.SubnetInfo{}, err
	}

	firstHost := network.WithLastOctet(network[3] + 1)
	lastHost := broadcast.WithLastOctet(broadcast[3] - 1)

	s.logger.Debug().
		Str("broadcast", broadcast.String()).
		Str("first_host", firstHost.String()).
		Str("last_host", lastHost.String()).
		Msg("Derived broadcast and host range")

	info := domain.SubnetInfo{
		NetworkAddress:   network.String(),
		BroadcastAddress: broadcast.String(),
		SubnetMask:       mask.String(),
		WildcardMask:     wildcard.String(),
		CIDRNotation:     prefixLength,
		HostRange:        fmt.Sprintf("%s - %s", firstHost, lastHost),
		TotalHosts:       totalHosts,
		TotalAddresses:   totalAddresses,
	}

	if s.detectClass {
		class, err := networkClass(network[0])
		if err != nil {
			return domain.SubnetInfo{}, err
		}
		info.NetworkClass = class

		s.logger.Debug().
			Str("class", class).
			Msg("Detected network class")
	}

	return info, nil
}

// wildcardMask spreads the 2^(32-prefix)-1 host-bit pattern across four
// octets. Valid for prefixes >= 8, where the first octet is always zero.
func wildcardMask(prefixLength int) domain.IPv4Address {
	v := uint32(1)<<(32-prefixLength) - 1
	return domain.IPv4Address{
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}
}

func subnetMask(wildcard domain.IPv4Address) domain.IPv4Address {
	var mask domain.IPv4Address
	for i, octet := range wildcard {
		mask[i] = 255 - octet
	}
	return mask
}

// broadcastAddress adds the wildcard to the network address octet by octet.
// Carries are never propagated between octets; a sum above 255 means the
// address has host bits set for this prefix.
func broadcastAddress(network, wildcard domain.IPv4Address) (domain.IPv4Address, error) {
	var broadcast domain.IPv4Address
	for i := range network {
		sum := int(network[i]) + int(wildcard[i])
		if sum > 255 {
			return domain.IPv4Address{}, fmt.Errorf("%w: octet %d sums to %d, network address is not aligned to the prefix",
				domain.ErrBroadcastOverflow, i+1, sum)
		}
		broadcast[i] = byte(sum)
	}
	return broadcast, nil
}

// networkClass maps the first octet to the legacy class. Informational
// only; it never influences the mask or broadcast computation.
func networkClass(firstOctet byte) (string, error) {
	switch {
	case firstOctet >= 8 && firstOctet <= 126:
		return "A", nil
	case firstOctet >= 128 && firstOctet <= 191:
		return "B", nil
	case firstOctet >= 192 && firstOctet <= 223:
		return "C", nil
	default:
		return "", fmt.Errorf("%w: first octet %d is outside 8-223", domain.ErrUnsupportedNetworkClass, firstOctet)
	}
}
