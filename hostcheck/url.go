// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package hostcheck

import (
	"fmt"
	neturl "net/url"
	"slices"
	"strings"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048
)

// URL is a validated absolute URL reduced to the parts a prefix is made of.
type URL struct {
	authority
	scheme string
	path   string
}

// Scheme returns the lowercase scheme.
func (u URL) Scheme() string {
	return u.scheme
}

// Path returns the escaped path without its leading slash.
func (u URL) Path() string {
	return u.path
}

// ParseHTTPURL validates an absolute http:// or https:// URL.
// The port is always accepted; opts.AllowLocal applies to the host.
//
// Example:
//
//	u, err := hostcheck.ParseHTTPURL("https://magiclen.org:8100/url-prefix", hostcheck.Options{})
//	if err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
func ParseHTTPURL(rawURL string, opts Options) (URL, error) {
	return parseURL(rawURL, opts, "http", "https")
}

// ParseHTTPFTPURL is like ParseHTTPURL but also accepts ftp:// URLs.
func ParseHTTPFTPURL(rawURL string, opts Options) (URL, error) {
	return parseURL(rawURL, opts, "http", "https", "ftp")
}

func parseURL(rawURL string, opts Options, schemes ...string) (URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return URL{}, fmt.Errorf("%w: url cannot be empty", ErrEmpty)
	}

	if len(rawURL) > MaxURLLength {
		return URL{}, fmt.Errorf("%w: url exceeds maximum length of %d characters", ErrInvalidURL, MaxURLLength)
	}

	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		return URL{}, fmt.Errorf("%w: invalid URL format: %w", ErrInvalidURL, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if !slices.Contains(schemes, scheme) {
		allowed := strings.Join(schemes, "://, ") + "://"
		if scheme == "" {
			return URL{}, fmt.Errorf("%w: url must use %s", ErrInvalidURL, allowed)
		}
		return URL{}, fmt.Errorf("%w: url must use %s, got: %s", ErrInvalidURL, allowed, scheme)
	}

	if parsed.Host == "" {
		return URL{}, fmt.Errorf("%w: url missing host/domain", ErrInvalidURL)
	}
	if parsed.User != nil {
		return URL{}, fmt.Errorf("%w: url must not include user info", ErrInvalidURL)
	}
	if parsed.RawQuery != "" || parsed.ForceQuery {
		return URL{}, fmt.Errorf("%w: url must not include a query string", ErrInvalidURL)
	}
	if parsed.Fragment != "" {
		return URL{}, fmt.Errorf("%w: url must not include a fragment", ErrInvalidURL)
	}

	// RFC 3986 allows an empty port after the colon; it means the default.
	hostport := parsed.Host
	if parsed.Port() == "" {
		hostport = strings.TrimSuffix(hostport, ":")
	}

	host, err := ParseHost(hostport, Options{AllowLocal: opts.AllowLocal, AllowPort: true})
	if err != nil {
		return URL{}, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	return URL{
		authority: host.authority,
		scheme:    scheme,
		path:      strings.TrimLeft(parsed.EscapedPath(), "/"),
	}, nil
}

// String returns the URL in the form it was validated, minus any leading
// slashes collapsed off the path.
func (u URL) String() string {
	s := u.scheme + "://" + u.authority.String()
	if u.path != "" {
		s += "/" + u.path
	}
	return s
}
