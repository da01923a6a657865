package domain

import "errors"

var (
	ErrInvalidAddressFormat    = errors.New("invalid address format")
	ErrInvalidOctetValue       = errors.New("invalid octet value")
	ErrUnsupportedPrefixLength = errors.New("unsupported prefix length")
	ErrBroadcastOverflow       = errors.New("broadcast overflow")
	ErrUnsupportedNetworkClass = errors.New("unsupported network class")
)
