// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prefix

import (
	"strconv"
	"strings"
)

// Port is an optional port number. The zero value, NoPort, means no port.
type Port struct {
	number uint16
	set    bool
}

// NoPort is the absent port.
var NoPort Port

// PortOf returns a present port with the given number.
func PortOf(n uint16) Port {
	return Port{number: n, set: true}
}

// Get returns the port number and whether it is set.
func (p Port) Get() (uint16, bool) {
	return p.number, p.set
}

// IsSet reports whether a port number is present.
func (p Port) IsSet() bool {
	return p.set
}

func (p Port) String() string {
	if !p.set {
		return ""
	}
	return strconv.FormatUint(uint64(p.number), 10)
}

// Build returns "<scheme>://<host>[:<port>][/<path>]".
//
// The port is written only when it is set and differs from the protocol's
// default port. A non-empty path is joined with exactly one slash; any
// leading slashes on path collapse into that separator. host is not validated.
func Build(protocol Protocol, host string, port Port, path string) string {
	var b strings.Builder
	b.Grow(len(protocol.name) + len("://") + len(host) + len(":65535/") + len(path))

	b.WriteString(protocol.name)
	b.WriteString("://")
	b.WriteString(host)

	if n, ok := port.Get(); ok && n != protocol.defaultPort {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(n), 10))
	}

	if path != "" {
		b.WriteByte('/')
		b.WriteString(strings.TrimLeft(path, "/"))
	}

	return b.String()
}
