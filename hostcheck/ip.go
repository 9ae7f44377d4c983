// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package hostcheck

import (
	"fmt"
	"net/netip"
	"strings"
)

// IPv4 is a validated IPv4 address with an optional port.
type IPv4 struct {
	authority
	addr netip.Addr
}

// Addr returns the parsed address.
func (ip IPv4) Addr() netip.Addr {
	return ip.addr
}

// IPv6 is a validated IPv6 address with an optional port. Host returns the
// literal in brackets, as it must appear in a URL.
type IPv6 struct {
	authority
	addr netip.Addr
}

// Addr returns the parsed address.
func (ip IPv6) Addr() netip.Addr {
	return ip.addr
}

// ParseIPv4 validates s as a dotted-quad IPv4 address, optionally followed by ":port".
func ParseIPv4(s string, opts Options) (IPv4, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return IPv4{}, fmt.Errorf("%w: IPv4 address cannot be empty", ErrEmpty)
	}
	if strings.Count(s, ":") > 1 || strings.HasPrefix(s, "[") {
		return IPv4{}, fmt.Errorf("%w: %q is not an IPv4 address", ErrInvalidIPv4, s)
	}

	literal, rawPort, hasPort := splitPort(s)
	port, err := checkPort("IPv4 address", rawPort, hasPort, opts)
	if err != nil {
		return IPv4{}, err
	}

	addr, err := netip.ParseAddr(literal)
	if err != nil || !addr.Is4() {
		return IPv4{}, fmt.Errorf("%w: %q is not an IPv4 address", ErrInvalidIPv4, literal)
	}
	if !opts.AllowLocal && isLocal(addr) {
		return IPv4{}, fmt.Errorf("%w: %s", ErrLocalNotAllowed, literal)
	}

	return IPv4{
		authority: authority{host: literal, port: port, hasPort: hasPort},
		addr:      addr,
	}, nil
}

// ParseIPv6 validates s as an IPv6 address. Accepted forms are "addr",
// "[addr]", and "[addr]:port". The literal text is preserved, so
// zero-padded groups are not compressed.
func ParseIPv6(s string, opts Options) (IPv6, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return IPv6{}, fmt.Errorf("%w: IPv6 address cannot be empty", ErrEmpty)
	}

	literal := s
	rawPort := ""
	hasPort := false
	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return IPv6{}, fmt.Errorf("%w: missing closing bracket", ErrInvalidIPv6)
		}
		literal = s[1:end]
		switch rest := s[end+1:]; {
		case rest == "":
		case rest[0] == ':':
			rawPort = rest[1:]
			hasPort = true
		default:
			return IPv6{}, fmt.Errorf("%w: unexpected %q after closing bracket", ErrInvalidIPv6, rest)
		}
	}

	port, err := checkPort("IPv6 address", rawPort, hasPort, opts)
	if err != nil {
		return IPv6{}, err
	}

	addr, err := netip.ParseAddr(literal)
	if err != nil || !addr.Is6() {
		return IPv6{}, fmt.Errorf("%w: %q is not an IPv6 address", ErrInvalidIPv6, literal)
	}
	if addr.Zone() != "" {
		return IPv6{}, fmt.Errorf("%w: zones are not supported", ErrInvalidIPv6)
	}
	if !opts.AllowLocal && isLocal(addr) {
		return IPv6{}, fmt.Errorf("%w: %s", ErrLocalNotAllowed, literal)
	}

	return IPv6{
		authority: authority{host: "[" + literal + "]", port: port, hasPort: hasPort},
		addr:      addr,
	}, nil
}
