// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package hostcheck validates untrusted host input (domain names, IPv4 and
// IPv6 literals, and absolute http/https/ftp URLs) and returns typed values
// that the prefix package can build URL prefixes from without re-checking.
//
// # Usage
//
//	import "github.com/jongio/urlprefix/hostcheck"
//
//	// Validate a domain that may carry a port
//	d, err := hostcheck.ParseDomain("magiclen.org:8100", hostcheck.Options{AllowPort: true})
//	if err != nil {
//		return fmt.Errorf("invalid domain: %w", err)
//	}
//	port, ok := d.Port() // 8100, true
//
//	// Accept any host kind, including loopback addresses
//	h, err := hostcheck.ParseHost("127.0.0.1:443", hostcheck.Options{AllowLocal: true, AllowPort: true})
//
//	// Validate a complete URL
//	u, err := hostcheck.ParseHTTPURL("https://magiclen.org/url-prefix", hostcheck.Options{})
//
// # Validation Rules
//
// Domains:
//   - Must not be empty or include a scheme ("https://")
//   - Total length at most 253 characters, each label 1-63 characters
//   - Labels contain only letters, digits, and hyphens, and do not start or end with a hyphen
//   - Must contain at least one dot ("localhost" is the only exception, and only with AllowLocal)
//   - The top-level label must not be numeric
//   - Internationalized names are converted with IDNA before the checks
//
// IP addresses:
//   - IPv4 must be a dotted quad
//   - IPv6 may be bare ("::1") or bracketed ("[::1]"); a port requires brackets
//   - IPv6 zones ("fe80::1%eth0") are rejected
//   - Loopback, private, link-local, and unspecified addresses require AllowLocal
//
// URLs:
//   - Must not exceed MaxURLLength (2048 characters)
//   - Must be parseable by net/url.Parse and use an allowed scheme
//   - Must have a host that passes ParseHost; a port is always accepted
//   - Must not carry user info, a query string, or a fragment
//
// # Errors
//
// All failures wrap one of the exported sentinel errors, so callers can
// branch with errors.Is:
//
//	if errors.Is(err, hostcheck.ErrLocalNotAllowed) {
//		// ask the user for a public address
//	}
package hostcheck
