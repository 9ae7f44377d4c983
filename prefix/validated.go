// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prefix

import "github.com/jongio/urlprefix/hostcheck"

// ValidatedHost is a host that has already passed validation and may carry
// its own port. All hostcheck value types satisfy it.
type ValidatedHost interface {
	Host() string
	Port() (uint16, bool)
}

// BuildValidated builds a prefix from a validated host.
//
// Port precedence: an explicit port wins; otherwise the port embedded in
// host is used; otherwise no port.
func BuildValidated(protocol Protocol, host ValidatedHost, port Port, path string) string {
	if !port.IsSet() {
		if n, ok := host.Port(); ok {
			port = PortOf(n)
		}
	}
	return Build(protocol, host.Host(), port, path)
}

// BuildWithValidatedDomain builds a prefix from a validated domain, using its embedded port if any.
func BuildWithValidatedDomain(protocol Protocol, domain hostcheck.Domain, path string) string {
	return BuildValidated(protocol, domain, NoPort, path)
}

// BuildWithValidatedIPv4 builds a prefix from a validated IPv4 address, using its embedded port if any.
func BuildWithValidatedIPv4(protocol Protocol, ip hostcheck.IPv4, path string) string {
	return BuildValidated(protocol, ip, NoPort, path)
}

// BuildWithValidatedIPv6 builds a prefix from a validated IPv6 address, using its embedded port if any.
// The address is written in brackets.
func BuildWithValidatedIPv6(protocol Protocol, ip hostcheck.IPv6, path string) string {
	return BuildValidated(protocol, ip, NoPort, path)
}

// BuildWithValidatedHost builds a prefix from a validated host of any kind, using its embedded port if any.
func BuildWithValidatedHost(protocol Protocol, host hostcheck.Host, path string) string {
	return BuildValidated(protocol, host, NoPort, path)
}

// BuildWithValidatedURL builds a prefix from the scheme, host, port, and path of a validated URL.
// A scheme that is not one of the predefined protocols is used verbatim with no default port.
func BuildWithValidatedURL(u hostcheck.URL) string {
	protocol, err := ParseProtocol(u.Scheme())
	if err != nil {
		protocol = Custom(u.Scheme(), 0)
	}
	return BuildValidated(protocol, u, NoPort, u.Path())
}
