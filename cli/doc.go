// Package cli implements the urlprefix command tree.
//
// Commands:
//
//	urlprefix build --protocol https --host magiclen.org --port 8100 --path url-prefix
//	urlprefix parse https://magiclen.org:443/url-prefix
//	urlprefix endpoints [name] --config urlprefix.yaml
//	urlprefix mcp
//	urlprefix version
//
// Every command honours the global --output flag; with --output json results
// are written as JSON objects instead of plain text.
package cli
