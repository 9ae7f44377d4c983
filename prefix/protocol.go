// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prefix

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProtocol indicates a protocol name that is not one of the predefined protocols.
var ErrUnknownProtocol = errors.New("unknown protocol")

// Protocol is a URL scheme together with its default port.
// Protocol values are comparable with ==.
type Protocol struct {
	name        string
	defaultPort uint16
}

// Predefined protocols.
var (
	HTTP  = Protocol{name: "http", defaultPort: 80}
	HTTPS = Protocol{name: "https", defaultPort: 443}
	FTP   = Protocol{name: "ftp", defaultPort: 21}
	WS    = Protocol{name: "ws", defaultPort: 80}
	WSS   = Protocol{name: "wss", defaultPort: 443}
)

var knownProtocols = []Protocol{HTTP, HTTPS, FTP, WS, WSS}

// Custom returns a protocol with the given scheme name and default port.
// The name is used verbatim as the scheme token.
func Custom(name string, defaultPort uint16) Protocol {
	return Protocol{name: name, defaultPort: defaultPort}
}

// ParseProtocol returns the predefined protocol whose name matches s, ignoring case
// and surrounding whitespace.
func ParseProtocol(s string) (Protocol, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range knownProtocols {
		if p.name == name {
			return p, nil
		}
	}
	return Protocol{}, fmt.Errorf("%w: %q (valid options: %s)", ErrUnknownProtocol, s, ProtocolNames())
}

// ProtocolNames returns a comma-separated list of the predefined protocol names.
func ProtocolNames() string {
	names := make([]string, len(knownProtocols))
	for i, p := range knownProtocols {
		names[i] = p.name
	}
	return strings.Join(names, ", ")
}

// Name returns the scheme token, e.g. "https".
func (p Protocol) Name() string {
	return p.name
}

// DefaultPort returns the port that is omitted from prefixes built with p.
func (p Protocol) DefaultPort() uint16 {
	return p.defaultPort
}

// IsZero reports whether p is the zero Protocol.
func (p Protocol) IsZero() bool {
	return p == Protocol{}
}

func (p Protocol) String() string {
	return p.name
}

// MarshalText implements encoding.TextMarshaler.
func (p Protocol) MarshalText() ([]byte, error) {
	return []byte(p.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseProtocol.
func (p *Protocol) UnmarshalText(text []byte) error {
	parsed, err := ParseProtocol(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
