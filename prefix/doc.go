// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package prefix builds URL prefix strings from a protocol, a host, an
// optional port, and an optional path.
//
// Web applications are often deployed behind different protocols and
// domains, and formatting the base URL by hand means repeating the same
// "is this the default port?" check everywhere. This package does that once.
//
// # Basic Usage
//
//	import "github.com/jongio/urlprefix/prefix"
//
//	p := prefix.Build(prefix.HTTPS, "magiclen.org", prefix.NoPort, "")
//	// Returns: "https://magiclen.org"
//
//	p = prefix.Build(prefix.HTTPS, "magiclen.org", prefix.PortOf(8100), "url-prefix")
//	// Returns: "https://magiclen.org:8100/url-prefix"
//
// # Output Format
//
// The result always has the form
//
//	<scheme>://<host>[:<port>][/<path>]
//
// The port segment is written only when a port is supplied and it differs
// from the protocol's default port (80 for http and ws, 443 for https and
// wss, 21 for ftp). The path, when non-empty, follows exactly one slash.
// The host and path are not escaped or otherwise normalized.
//
// # Validated Hosts
//
// Build trusts its caller. When the host comes from user input, validate it
// first with the hostcheck package and use one of the BuildWithValidated
// functions:
//
//	d, err := hostcheck.ParseDomain(userInput, hostcheck.Options{AllowPort: true})
//	if err != nil {
//		return err
//	}
//	p := prefix.BuildWithValidatedDomain(prefix.HTTPS, d, "url-prefix")
//
// A port embedded in the validated value ("magiclen.org:8100") is used
// unless BuildValidated is called with an explicit port, which always wins.
//
// # Thread Safety
//
// All functions in this package are pure and safe for concurrent use.
package prefix
