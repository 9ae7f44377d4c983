// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prefix_test

import (
	"fmt"

	"github.com/jongio/urlprefix/hostcheck"
	"github.com/jongio/urlprefix/prefix"
)

func ExampleBuild() {
	fmt.Println(prefix.Build(prefix.HTTPS, "magiclen.org", prefix.NoPort, ""))
	fmt.Println(prefix.Build(prefix.HTTPS, "magiclen.org", prefix.PortOf(8100), "url-prefix"))
	fmt.Println(prefix.Build(prefix.HTTP, "magiclen.org", prefix.PortOf(80), ""))
	// Output:
	// https://magiclen.org
	// https://magiclen.org:8100/url-prefix
	// http://magiclen.org
}

func ExampleBuildWithValidatedDomain() {
	domain, err := hostcheck.ParseDomain("magiclen.org:443", hostcheck.Options{AllowPort: true})
	if err != nil {
		fmt.Println("invalid domain:", err)
		return
	}
	fmt.Println(prefix.BuildWithValidatedDomain(prefix.HTTPS, domain, "url-prefix"))
	// Output: https://magiclen.org/url-prefix
}

func ExampleBuildValidated() {
	host, err := hostcheck.ParseHost("magiclen.org:8100", hostcheck.Options{AllowPort: true})
	if err != nil {
		fmt.Println("invalid host:", err)
		return
	}
	// The explicit port takes precedence over the one in the input.
	fmt.Println(prefix.BuildValidated(prefix.HTTPS, host, prefix.PortOf(9000), ""))
	// Output: https://magiclen.org:9000
}
