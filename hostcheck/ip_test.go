// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package hostcheck

import (
	"errors"
	"testing"
)

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     Options
		wantHost string
		wantPort uint16
		wantHas  bool
		wantErr  error
	}{
		{
			name:     "public address",
			input:    "8.8.8.8",
			wantHost: "8.8.8.8",
		},
		{
			name:     "loopback with port",
			input:    "127.0.0.1:443",
			opts:     Options{AllowLocal: true, AllowPort: true},
			wantHost: "127.0.0.1",
			wantPort: 443,
			wantHas:  true,
		},
		{
			name:     "private allowed",
			input:    "192.168.1.1",
			opts:     Options{AllowLocal: true},
			wantHost: "192.168.1.1",
		},
		{
			name:     "surrounding whitespace",
			input:    "  8.8.4.4  ",
			wantHost: "8.8.4.4",
		},
		{
			name:    "loopback not allowed",
			input:   "127.0.0.1",
			wantErr: ErrLocalNotAllowed,
		},
		{
			name:    "private not allowed",
			input:   "10.0.0.1",
			wantErr: ErrLocalNotAllowed,
		},
		{
			name:    "unspecified not allowed",
			input:   "0.0.0.0",
			wantErr: ErrLocalNotAllowed,
		},
		{
			name:    "port not allowed",
			input:   "8.8.8.8:53",
			wantErr: ErrPortNotAllowed,
		},
		{
			name:    "octet out of range",
			input:   "256.1.1.1",
			wantErr: ErrInvalidIPv4,
		},
		{
			name:    "too few octets",
			input:   "1.2.3",
			wantErr: ErrInvalidIPv4,
		},
		{
			name:    "ipv6 literal",
			input:   "::1",
			opts:    Options{AllowLocal: true, AllowPort: true},
			wantErr: ErrInvalidIPv4,
		},
		{
			name:    "bracketed literal",
			input:   "[8.8.8.8]",
			wantErr: ErrInvalidIPv4,
		},
		{
			name:    "domain",
			input:   "magiclen.org",
			wantErr: ErrInvalidIPv4,
		},
		{
			name:    "empty",
			input:   " ",
			wantErr: ErrEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip, err := ParseIPv4(tt.input, tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseIPv4(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIPv4(%q) unexpected error = %v", tt.input, err)
			}
			if ip.Host() != tt.wantHost {
				t.Errorf("Host() = %q, want %q", ip.Host(), tt.wantHost)
			}
			if !ip.Addr().Is4() {
				t.Errorf("Addr() = %v, want IPv4", ip.Addr())
			}
			port, has := ip.Port()
			if port != tt.wantPort || has != tt.wantHas {
				t.Errorf("Port() = (%d, %v), want (%d, %v)", port, has, tt.wantPort, tt.wantHas)
			}
		})
	}
}

func TestParseIPv6(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     Options
		wantHost string
		wantPort uint16
		wantHas  bool
		wantErr  error
	}{
		{
			name:     "zero padded with port",
			input:    "[0000:0000:0000:0000:0000:0000:370:7348]:443",
			opts:     Options{AllowPort: true},
			wantHost: "[0000:0000:0000:0000:0000:0000:370:7348]",
			wantPort: 443,
			wantHas:  true,
		},
		{
			name:     "bare literal",
			input:    "2001:db8::1",
			wantHost: "[2001:db8::1]",
		},
		{
			name:     "bracketed literal",
			input:    "[2001:db8::1]",
			wantHost: "[2001:db8::1]",
		},
		{
			name:     "loopback allowed",
			input:    "[::1]:3000",
			opts:     Options{AllowLocal: true, AllowPort: true},
			wantHost: "[::1]",
			wantPort: 3000,
			wantHas:  true,
		},
		{
			name:    "loopback not allowed",
			input:   "::1",
			wantErr: ErrLocalNotAllowed,
		},
		{
			name:    "unique local not allowed",
			input:   "fd00::1",
			wantErr: ErrLocalNotAllowed,
		},
		{
			name:    "link local not allowed",
			input:   "fe80::1",
			wantErr: ErrLocalNotAllowed,
		},
		{
			name:    "port not allowed",
			input:   "[2001:db8::1]:443",
			wantErr: ErrPortNotAllowed,
		},
		{
			name:    "zone rejected",
			input:   "fe80::1%eth0",
			opts:    Options{AllowLocal: true},
			wantErr: ErrInvalidIPv6,
		},
		{
			name:    "missing closing bracket",
			input:   "[2001:db8::1",
			wantErr: ErrInvalidIPv6,
		},
		{
			name:    "garbage after bracket",
			input:   "[2001:db8::1]x",
			wantErr: ErrInvalidIPv6,
		},
		{
			name:    "ipv4 literal",
			input:   "8.8.8.8",
			wantErr: ErrInvalidIPv6,
		},
		{
			name:    "too many groups",
			input:   "1:2:3:4:5:6:7:8:9",
			wantErr: ErrInvalidIPv6,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip, err := ParseIPv6(tt.input, tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseIPv6(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIPv6(%q) unexpected error = %v", tt.input, err)
			}
			if ip.Host() != tt.wantHost {
				t.Errorf("Host() = %q, want %q", ip.Host(), tt.wantHost)
			}
			if !ip.Addr().Is6() {
				t.Errorf("Addr() = %v, want IPv6", ip.Addr())
			}
			port, has := ip.Port()
			if port != tt.wantPort || has != tt.wantHas {
				t.Errorf("Port() = (%d, %v), want (%d, %v)", port, has, tt.wantPort, tt.wantHas)
			}
		})
	}
}
