// Package mcpserver exposes the prefix builder as Model Context Protocol tools.
//
// Two tools are registered:
//
//   - build_prefix: validates a host and builds "<scheme>://<host>[:<port>][/<path>]".
//   - parse_url: validates an absolute http(s) or ftp URL and returns its prefix.
//
// Results are JSON text. Invalid input and rate limiting produce tool error
// results rather than protocol errors, so an agent can read the reason and retry.
package mcpserver
