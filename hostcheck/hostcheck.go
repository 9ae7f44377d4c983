// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package hostcheck

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

var (
	// ErrEmpty indicates empty or whitespace-only input.
	ErrEmpty = errors.New("empty input")
	// ErrInvalidDomain indicates a malformed domain name.
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrInvalidIPv4 indicates a malformed IPv4 address.
	ErrInvalidIPv4 = errors.New("invalid IPv4 address")
	// ErrInvalidIPv6 indicates a malformed IPv6 address.
	ErrInvalidIPv6 = errors.New("invalid IPv6 address")
	// ErrInvalidHost indicates input that is not a valid domain or IP address.
	ErrInvalidHost = errors.New("invalid host")
	// ErrInvalidPort indicates a port that is not a number between 1 and 65535.
	ErrInvalidPort = errors.New("invalid port")
	// ErrPortNotAllowed indicates a port was present but Options.AllowPort was false.
	ErrPortNotAllowed = errors.New("port not allowed")
	// ErrLocalNotAllowed indicates a local host was present but Options.AllowLocal was false.
	ErrLocalNotAllowed = errors.New("local address not allowed")
	// ErrInvalidURL indicates a malformed or unsupported URL.
	ErrInvalidURL = errors.New("invalid URL")
)

// Options controls what the Parse functions accept.
type Options struct {
	// AllowLocal accepts "localhost" and loopback, private, link-local,
	// and unspecified IP addresses.
	AllowLocal bool
	// AllowPort accepts an explicit ":port" suffix.
	AllowPort bool
}

// authority is the host and optional port shared by every validated value.
type authority struct {
	host    string
	port    uint16
	hasPort bool
}

// Host returns the host as it should appear in a URL.
func (a authority) Host() string {
	return a.host
}

// Port returns the embedded port and whether one was present.
func (a authority) Port() (uint16, bool) {
	return a.port, a.hasPort
}

// String returns host[:port].
func (a authority) String() string {
	if !a.hasPort {
		return a.host
	}
	return a.host + ":" + strconv.FormatUint(uint64(a.port), 10)
}

// splitPort splits s at its last colon. It does not understand IPv6 brackets.
func splitPort(s string) (host, port string, hasPort bool) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// checkPort applies opts to a port split off the input named by what.
func checkPort(what, raw string, hasPort bool, opts Options) (uint16, error) {
	if !hasPort {
		return 0, nil
	}
	if !opts.AllowPort {
		return 0, fmt.Errorf("%w: %s should not include port", ErrPortNotAllowed, what)
	}
	return parsePort(raw)
}

func parsePort(raw string) (uint16, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: port cannot be empty", ErrInvalidPort)
	}
	n, err := strconv.ParseUint(raw, 10, 16)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q must be between 1 and 65535", ErrInvalidPort, raw)
	}
	return uint16(n), nil
}

// isLocal reports whether addr is loopback, private, link-local, or unspecified.
func isLocal(addr netip.Addr) bool {
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsUnspecified()
}
