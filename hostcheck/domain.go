// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package hostcheck

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

const (
	// MaxDomainLength is the RFC 1035 limit for a domain name in text form.
	MaxDomainLength = 253
	// MaxLabelLength is the RFC 1035 limit for a single domain label.
	MaxLabelLength = 63

	localhost = "localhost"
	acePrefix = "xn--"
)

// Domain is a validated domain name with an optional port.
type Domain struct {
	authority
	ascii string
}

// ASCII returns the IDNA (punycode) form of the domain. For ASCII input it
// is the domain as given.
func (d Domain) ASCII() string {
	return d.ascii
}

// IsLocalhost reports whether the domain is "localhost".
func (d Domain) IsLocalhost() bool {
	return d.ascii == localhost
}

// ParseDomain validates s as a domain name, optionally followed by ":port".
// Surrounding whitespace is ignored. Host returns the name as supplied.
func ParseDomain(s string, opts Options) (Domain, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Domain{}, fmt.Errorf("%w: domain cannot be empty", ErrEmpty)
	}

	if strings.Contains(s, "://") {
		return Domain{}, fmt.Errorf("%w: domain should not include protocol", ErrInvalidDomain)
	}

	name, rawPort, hasPort := splitPort(s)
	port, err := checkPort("domain", rawPort, hasPort, opts)
	if err != nil {
		return Domain{}, err
	}

	ascii, err := checkDomainName(name, opts.AllowLocal)
	if err != nil {
		return Domain{}, err
	}

	return Domain{
		authority: authority{host: name, port: port, hasPort: hasPort},
		ascii:     ascii,
	}, nil
}

// ValidateDomain validates a bare domain name. "localhost" is accepted and
// ports are rejected.
//
// Example:
//
//	if err := hostcheck.ValidateDomain(customDomain); err != nil {
//		return fmt.Errorf("invalid custom domain: %w", err)
//	}
func ValidateDomain(domain string) error {
	_, err := ParseDomain(domain, Options{AllowLocal: true})
	return err
}

// checkDomainName validates name and returns its ASCII form.
func checkDomainName(name string, allowLocal bool) (string, error) {
	if strings.EqualFold(name, localhost) {
		if !allowLocal {
			return "", fmt.Errorf("%w: %s is not allowed", ErrLocalNotAllowed, localhost)
		}
		return localhost, nil
	}

	ascii := name
	if !isASCII(name) {
		converted, err := idna.Lookup.ToASCII(name)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidDomain, err)
		}
		ascii = converted
	}

	if len(ascii) > MaxDomainLength {
		return "", fmt.Errorf("%w: domain exceeds maximum length of %d characters", ErrInvalidDomain, MaxDomainLength)
	}

	labels := strings.Split(ascii, ".")
	if len(labels) < 2 {
		return "", fmt.Errorf("%w: domain must have at least one dot", ErrInvalidDomain)
	}

	for _, label := range labels {
		if err := checkLabel(label); err != nil {
			return "", err
		}
		if err := checkACELabel(label); err != nil {
			return "", err
		}
	}

	if isNumeric(labels[len(labels)-1]) {
		return "", fmt.Errorf("%w: domain top-level label cannot be numeric", ErrInvalidDomain)
	}

	return ascii, nil
}

// checkACELabel rejects xn-- labels that are not valid punycode.
func checkACELabel(label string) error {
	if len(label) < len(acePrefix) || !strings.EqualFold(label[:len(acePrefix)], acePrefix) {
		return nil
	}
	if _, err := idna.Lookup.ToUnicode(label); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDomain, err)
	}
	return nil
}

func checkLabel(label string) error {
	if label == "" {
		return fmt.Errorf("%w: domain has empty label", ErrInvalidDomain)
	}
	if len(label) > MaxLabelLength {
		return fmt.Errorf("%w: domain label exceeds %d characters", ErrInvalidDomain, MaxLabelLength)
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !isAlphaNumeric(c) && c != '-' {
			return fmt.Errorf("%w: domain label contains invalid character %q", ErrInvalidDomain, c)
		}
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("%w: domain label cannot start or end with hyphen", ErrInvalidDomain)
	}
	return nil
}

func isAlphaNumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
