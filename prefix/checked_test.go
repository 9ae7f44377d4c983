// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package prefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/urlprefix/hostcheck"
)

func TestParseValidation(t *testing.T) {
	tests := []struct {
		input string
		want  Validation
	}{
		{"none", ValidateNone},
		{"domain", ValidateDomain},
		{"IPv4", ValidateIPv4},
		{"ipv6", ValidateIPv6},
		{" host ", ValidateHost},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseValidation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, mustParseValidation(t, got.String()))
		})
	}

	_, err := ParseValidation("url")
	assert.ErrorIs(t, err, ErrUnknownValidation)
	assert.Contains(t, err.Error(), "none, domain, ipv4, ipv6, host")
}

func mustParseValidation(t *testing.T, s string) Validation {
	t.Helper()
	v, err := ParseValidation(s)
	require.NoError(t, err)
	return v
}

func TestBuildChecked(t *testing.T) {
	tests := []struct {
		name       string
		protocol   Protocol
		host       string
		port       Port
		path       string
		validation Validation
		allowLocal bool
		want       string
		wantErr    error
	}{
		{
			name:       "none passes host through",
			protocol:   HTTPS,
			host:       "not a host",
			validation: ValidateNone,
			want:       "https://not a host",
		},
		{
			name:       "domain with embedded default port",
			protocol:   HTTPS,
			host:       "magiclen.org:443",
			path:       "url-prefix",
			validation: ValidateDomain,
			want:       "https://magiclen.org/url-prefix",
		},
		{
			name:       "explicit port wins",
			protocol:   HTTPS,
			host:       "magiclen.org:8443",
			port:       PortOf(8100),
			validation: ValidateHost,
			want:       "https://magiclen.org:8100",
		},
		{
			name:       "ipv6 bracketed",
			protocol:   HTTP,
			host:       "2001:db8::1",
			validation: ValidateIPv6,
			want:       "http://[2001:db8::1]",
		},
		{
			name:       "local ipv4 allowed",
			protocol:   HTTP,
			host:       "127.0.0.1:8080",
			validation: ValidateIPv4,
			allowLocal: true,
			want:       "http://127.0.0.1:8080",
		},
		{
			name:       "local ipv4 rejected",
			protocol:   HTTP,
			host:       "127.0.0.1",
			validation: ValidateIPv4,
			wantErr:    hostcheck.ErrLocalNotAllowed,
		},
		{
			name:       "domain rejects ip",
			protocol:   HTTP,
			host:       "8.8.8.8",
			validation: ValidateDomain,
			wantErr:    hostcheck.ErrInvalidDomain,
		},
		{
			name:       "host rejects garbage",
			protocol:   HTTP,
			host:       "bad host",
			validation: ValidateHost,
			wantErr:    hostcheck.ErrInvalidHost,
		},
		{
			name:       "unknown validation",
			protocol:   HTTP,
			host:       "magiclen.org",
			validation: Validation(42),
			wantErr:    ErrUnknownValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildChecked(tt.protocol, tt.host, tt.port, tt.path, tt.validation, tt.allowLocal)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
