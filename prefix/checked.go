// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prefix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jongio/urlprefix/hostcheck"
)

// ErrUnknownValidation indicates a validation name that is not recognized.
var ErrUnknownValidation = errors.New("unknown validation")

// Validation selects how BuildChecked validates an untrusted host.
type Validation int

const (
	// ValidateNone passes the host through unchanged.
	ValidateNone Validation = iota
	// ValidateDomain requires a domain name.
	ValidateDomain
	// ValidateIPv4 requires an IPv4 address.
	ValidateIPv4
	// ValidateIPv6 requires an IPv6 address.
	ValidateIPv6
	// ValidateHost accepts a domain name or either IP family.
	ValidateHost
)

var validationNames = []string{"none", "domain", "ipv4", "ipv6", "host"}

func (v Validation) String() string {
	if v < 0 || int(v) >= len(validationNames) {
		return fmt.Sprintf("Validation(%d)", int(v))
	}
	return validationNames[v]
}

// ParseValidation returns the Validation named s, ignoring case.
func ParseValidation(s string) (Validation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range validationNames {
		if n == name {
			return Validation(i), nil
		}
	}
	return ValidateNone, fmt.Errorf("%w: %q (valid options: %s)", ErrUnknownValidation, s, ValidationNames())
}

// ValidationNames returns a comma-separated list of the validation names.
func ValidationNames() string {
	return strings.Join(validationNames, ", ")
}

// BuildChecked validates host according to v and builds the prefix.
// A port embedded in host is accepted; an explicitly set port wins over it.
// With ValidateNone it is equivalent to Build and never fails.
func BuildChecked(protocol Protocol, host string, port Port, path string, v Validation, allowLocal bool) (string, error) {
	opts := hostcheck.Options{AllowLocal: allowLocal, AllowPort: true}

	var (
		validated ValidatedHost
		err       error
	)
	switch v {
	case ValidateNone:
		return Build(protocol, host, port, path), nil
	case ValidateDomain:
		validated, err = hostcheck.ParseDomain(host, opts)
	case ValidateIPv4:
		validated, err = hostcheck.ParseIPv4(host, opts)
	case ValidateIPv6:
		validated, err = hostcheck.ParseIPv6(host, opts)
	case ValidateHost:
		validated, err = hostcheck.ParseHost(host, opts)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownValidation, v)
	}
	if err != nil {
		return "", err
	}

	return BuildValidated(protocol, validated, port, path), nil
}
