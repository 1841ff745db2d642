package netaddr

import (
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_ServiceAddress(t *testing.T) {
	tests := []struct {
		name     string
		resolver Resolver
		expected string
	}{
		{
			name: "ipv4 preferred",
			resolver: Resolver{
				Hostname: func() (string, error) { return "composite-1", nil },
				LookupIP: func(string) ([]net.IP, error) {
					return []net.IP{net.ParseIP("fe80::1"), net.ParseIP("10.0.0.5")}, nil
				},
			},
			expected: "composite-1/10.0.0.5:7000",
		},
		{
			name: "ipv6 only",
			resolver: Resolver{
				Hostname: func() (string, error) { return "composite-1", nil },
				LookupIP: func(string) ([]net.IP, error) { return []net.IP{net.ParseIP("fe80::1")}, nil },
			},
			expected: "composite-1/fe80::1:7000",
		},
		{
			name: "lookup failure",
			resolver: Resolver{
				Hostname: func() (string, error) { return "composite-1", nil },
				LookupIP: func(string) ([]net.IP, error) { return nil, errors.New("no such host") },
			},
			expected: "composite-1/unknown IP address:7000",
		},
		{
			name: "hostname failure",
			resolver: Resolver{
				Hostname: func() (string, error) { return "", errors.New("boom") },
				LookupIP: func(string) ([]net.IP, error) { return nil, nil },
			},
			expected: "unknown host name/unknown IP address:7000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resolver.ServiceAddress("7000"))
		})
	}
}

func TestServiceAddress(t *testing.T) {
	address := ServiceAddress("7000")

	assert.True(t, strings.HasSuffix(address, ":7000"), address)
	assert.Contains(t, address, "/")
}
