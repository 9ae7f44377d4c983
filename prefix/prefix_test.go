// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prefix

import "testing"

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		protocol Protocol
		host     string
		port     Port
		path     string
		want     string
	}{
		// No port, no path
		{
			name:     "http bare host",
			protocol: HTTP,
			host:     "magiclen.org",
			want:     "http://magiclen.org",
		},
		{
			name:     "https bare host",
			protocol: HTTPS,
			host:     "magiclen.org",
			want:     "https://magiclen.org",
		},
		{
			name:     "ftp bare host",
			protocol: FTP,
			host:     "magiclen.org",
			want:     "ftp://magiclen.org",
		},

		// Non-default ports
		{
			name:     "http custom port",
			protocol: HTTP,
			host:     "magiclen.org",
			port:     PortOf(8000),
			want:     "http://magiclen.org:8000",
		},
		{
			name:     "https custom port",
			protocol: HTTPS,
			host:     "magiclen.org",
			port:     PortOf(8100),
			want:     "https://magiclen.org:8100",
		},
		{
			name:     "ftp custom port",
			protocol: FTP,
			host:     "magiclen.org",
			port:     PortOf(8200),
			want:     "ftp://magiclen.org:8200",
		},
		{
			name:     "http with https default port",
			protocol: HTTP,
			host:     "magiclen.org",
			port:     PortOf(443),
			want:     "http://magiclen.org:443",
		},
		{
			name:     "port zero is still a port",
			protocol: HTTP,
			host:     "magiclen.org",
			port:     PortOf(0),
			want:     "http://magiclen.org:0",
		},

		// Default ports are omitted
		{
			name:     "http default port",
			protocol: HTTP,
			host:     "magiclen.org",
			port:     PortOf(80),
			want:     "http://magiclen.org",
		},
		{
			name:     "https default port",
			protocol: HTTPS,
			host:     "magiclen.org",
			port:     PortOf(443),
			want:     "https://magiclen.org",
		},
		{
			name:     "ftp default port",
			protocol: FTP,
			host:     "magiclen.org",
			port:     PortOf(21),
			want:     "ftp://magiclen.org",
		},
		{
			name:     "wss default port",
			protocol: WSS,
			host:     "magiclen.org",
			port:     PortOf(443),
			want:     "wss://magiclen.org",
		},

		// Paths
		{
			name:     "http default port with path",
			protocol: HTTP,
			host:     "magiclen.org",
			port:     PortOf(80),
			path:     "url-prefix",
			want:     "http://magiclen.org/url-prefix",
		},
		{
			name:     "https custom port with path",
			protocol: HTTPS,
			host:     "magiclen.org",
			port:     PortOf(8100),
			path:     "url-prefix",
			want:     "https://magiclen.org:8100/url-prefix",
		},
		{
			name:     "https default port with path",
			protocol: HTTPS,
			host:     "magiclen.org",
			port:     PortOf(443),
			path:     "url-prefix",
			want:     "https://magiclen.org/url-prefix",
		},
		{
			name:     "leading slash collapses into separator",
			protocol: HTTPS,
			host:     "magiclen.org",
			path:     "/url-prefix",
			want:     "https://magiclen.org/url-prefix",
		},
		{
			name:     "repeated leading slashes collapse",
			protocol: HTTPS,
			host:     "magiclen.org",
			path:     "///url-prefix",
			want:     "https://magiclen.org/url-prefix",
		},
		{
			name:     "trailing slash preserved",
			protocol: HTTPS,
			host:     "magiclen.org",
			path:     "a/b/",
			want:     "https://magiclen.org/a/b/",
		},
		{
			name:     "path not escaped",
			protocol: HTTPS,
			host:     "magiclen.org",
			path:     "with space/%20",
			want:     "https://magiclen.org/with space/%20",
		},
		{
			name:     "root path",
			protocol: HTTPS,
			host:     "magiclen.org",
			path:     "/",
			want:     "https://magiclen.org/",
		},

		// Host passthrough
		{
			name:     "host is not validated",
			protocol: HTTP,
			host:     "not a host!",
			want:     "http://not a host!",
		},
		{
			name:     "empty host",
			protocol: HTTP,
			want:     "http://",
		},
		{
			name:     "bracketed ipv6 host",
			protocol: HTTP,
			host:     "[::1]",
			port:     PortOf(8080),
			want:     "http://[::1]:8080",
		},

		// Custom protocols
		{
			name:     "custom protocol default port",
			protocol: Custom("gopher", 70),
			host:     "magiclen.org",
			port:     PortOf(70),
			want:     "gopher://magiclen.org",
		},
		{
			name:     "custom protocol other port",
			protocol: Custom("gopher", 70),
			host:     "magiclen.org",
			port:     PortOf(7070),
			path:     "menu",
			want:     "gopher://magiclen.org:7070/menu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.protocol, tt.host, tt.port, tt.path)
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild_HTTPWithoutPortIsSchemePlusHost(t *testing.T) {
	hosts := []string{"", "a", "magiclen.org", "127.0.0.1", "[::1]", "例え.jp", "host:with:colons"}
	for _, h := range hosts {
		if got, want := Build(HTTP, h, NoPort, ""), "http://"+h; got != want {
			t.Errorf("Build(HTTP, %q) = %q, want %q", h, got, want)
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	first := Build(HTTPS, "magiclen.org", PortOf(8100), "url-prefix")
	for i := 0; i < 10; i++ {
		if got := Build(HTTPS, "magiclen.org", PortOf(8100), "url-prefix"); got != first {
			t.Fatalf("Build() call %d = %q, want %q", i, got, first)
		}
	}
}

func TestPort(t *testing.T) {
	if NoPort.IsSet() {
		t.Error("expected NoPort to be unset")
	}
	if n, ok := NoPort.Get(); ok || n != 0 {
		t.Errorf("NoPort.Get() = (%d, %v), want (0, false)", n, ok)
	}
	if NoPort.String() != "" {
		t.Errorf("NoPort.String() = %q, want empty", NoPort.String())
	}

	p := PortOf(8100)
	if !p.IsSet() {
		t.Error("expected PortOf(8100) to be set")
	}
	if n, ok := p.Get(); !ok || n != 8100 {
		t.Errorf("PortOf(8100).Get() = (%d, %v), want (8100, true)", n, ok)
	}
	if p.String() != "8100" {
		t.Errorf("PortOf(8100).String() = %q, want %q", p.String(), "8100")
	}

	var zero Port
	if zero != NoPort {
		t.Error("expected zero Port to equal NoPort")
	}
}
