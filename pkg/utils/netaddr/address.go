// ABOUTME: Resolves the address of the running service instance
// ABOUTME: Produces the hostname/ip:port string reported in composite responses

package netaddr

import (
	"fmt"
	"net"
	"os"
)

const (
	unknownHost = "unknown host name"
	unknownIP   = "unknown IP address"
)

// Resolver looks up the local host name and its addresses
type Resolver struct {
	Hostname func() (string, error)
	LookupIP func(host string) ([]net.IP, error)
}

// DefaultResolver uses the operating system
var DefaultResolver = Resolver{
	Hostname: os.Hostname,
	LookupIP: net.LookupIP,
}

// ServiceAddress returns "hostname/ip:port" for this instance.
// Call it once at startup; the result does not change for the process lifetime.
func ServiceAddress(port string) string {
	return DefaultResolver.ServiceAddress(port)
}

// ServiceAddress returns "hostname/ip:port" using r
func (r Resolver) ServiceAddress(port string) string {
	host, err := r.Hostname()
	if err != nil || host == "" {
		return fmt.Sprintf("%s/%s:%s", unknownHost, unknownIP, port)
	}

	return fmt.Sprintf("%s/%s:%s", host, r.ipAddress(host), port)
}

// ipAddress prefers the first IPv4 address of host
func (r Resolver) ipAddress(host string) string {
	ips, err := r.LookupIP(host)
	if err != nil || len(ips) == 0 {
		return unknownIP
	}

	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ips[0].String()
}
