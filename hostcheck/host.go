// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package hostcheck

import (
	"fmt"
	"net/netip"
	"strings"
)

// Kind identifies what a validated Host holds.
type Kind int

const (
	// KindDomain is a domain name.
	KindDomain Kind = iota + 1
	// KindIPv4 is an IPv4 address.
	KindIPv4
	// KindIPv6 is an IPv6 address.
	KindIPv6
)

func (k Kind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindIPv4:
		return "ipv4"
	case KindIPv6:
		return "ipv6"
	default:
		return "unknown"
	}
}

// Host is a validated domain name or IP address with an optional port.
type Host struct {
	authority
	kind Kind
}

// Kind returns what the host holds.
func (h Host) Kind() Kind {
	return h.kind
}

// ParseHost validates s as an IPv6 address, an IPv4 address, or a domain
// name, in that order of detection. Failures wrap ErrInvalidHost as well as
// the kind-specific sentinel.
func ParseHost(s string, opts Options) (Host, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Host{}, fmt.Errorf("%w: host cannot be empty", ErrEmpty)
	}

	if strings.HasPrefix(s, "[") || strings.Count(s, ":") > 1 {
		ip, err := ParseIPv6(s, opts)
		if err != nil {
			return Host{}, fmt.Errorf("%w: %w", ErrInvalidHost, err)
		}
		return Host{authority: ip.authority, kind: KindIPv6}, nil
	}

	name, _, _ := splitPort(s)
	if addr, err := netip.ParseAddr(name); err == nil && addr.Is4() {
		ip, err := ParseIPv4(s, opts)
		if err != nil {
			return Host{}, fmt.Errorf("%w: %w", ErrInvalidHost, err)
		}
		return Host{authority: ip.authority, kind: KindIPv4}, nil
	}

	d, err := ParseDomain(s, opts)
	if err != nil {
		return Host{}, fmt.Errorf("%w: %w", ErrInvalidHost, err)
	}
	return Host{authority: d.authority, kind: KindDomain}, nil
}
