// Command urlprefix builds URL prefixes from a protocol, host, port, and path.
package main

import (
	"os"

	"github.com/jongio/urlprefix/cli"
)

func main() {
	os.Exit(cli.Execute())
}
