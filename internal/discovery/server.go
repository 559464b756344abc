package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Server is a preview server found on the local network.
type Server struct {
	// Name is the advertised instance name (e.g., "ptable on studio")
	Name string

	// Host is the mDNS hostname (e.g., "studio.local.")
	Host string

	// IP is the server address, IPv4 when one was advertised
	IP string

	Port int

	// Version is the ptable version reported in the TXT record
	Version string

	DiscoveredAt time.Time
}

// String returns a human-readable description of the server
func (s *Server) String() string {
	return fmt.Sprintf("%s (%s) at %s", s.Name, s.Host, net.JoinHostPort(s.IP, strconv.Itoa(s.Port)))
}

// URL returns the preview page URL
func (s *Server) URL() string {
	return "http://" + net.JoinHostPort(s.IP, strconv.Itoa(s.Port)) + "/"
}
