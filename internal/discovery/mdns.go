package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/ptable/internal/logging"
	"github.com/muurk/ptable/internal/version"
)

const (
	// ServiceType is the mDNS service type preview servers advertise
	ServiceType = "_ptable._tcp"

	// ServiceDomain is the mDNS domain
	ServiceDomain = "local."

	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is assumed when an entry carries no port
	DefaultPort = 8080
)

// Advertise registers a preview server under name until ctx is done.
func Advertise(ctx context.Context, name string, port int) error {
	server, err := zeroconf.Register(name, ServiceType, ServiceDomain, port, txtRecords(), nil)
	if err != nil {
		return fmt.Errorf("failed to register mDNS service: %w", err)
	}
	logging.Info("Advertising preview server",
		zap.String("name", name),
		zap.String("service", ServiceType),
		zap.Int("port", port))

	go func() {
		<-ctx.Done()
		server.Shutdown()
	}()
	return nil
}

func txtRecords() []string {
	return []string{"version=" + version.Version, "path=/"}
}

// Scanner browses for advertised preview servers
type Scanner struct {
	Timeout time.Duration
}

// NewScanner creates a scanner with the default timeout
func NewScanner() *Scanner {
	return &Scanner{Timeout: DefaultScanTimeout}
}

// Scan collects every server seen before the timeout or ctx expires.
func (s *Scanner) Scan(ctx context.Context) ([]*Server, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var (
		mu      sync.Mutex
		servers []*Server
		seen    = make(map[string]bool)
	)
	entries := make(chan *zeroconf.ServiceEntry)
	go func() {
		for entry := range entries {
			server := parseServiceEntry(entry)
			if server == nil {
				continue
			}
			mu.Lock()
			if !seen[server.Name] {
				seen[server.Name] = true
				servers = append(servers, server)
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return append([]*Server(nil), servers...), nil
}

// parseServiceEntry converts a zeroconf entry to a Server.
// Entries without any address are dropped.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Server {
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	server := &Server{
		Name:         entry.Instance,
		Host:         entry.HostName,
		IP:           ip,
		Port:         port,
		DiscoveredAt: time.Now(),
	}
	for _, txt := range entry.Text {
		if v, ok := strings.CutPrefix(txt, "version="); ok {
			server.Version = v
		}
	}
	if server.Name == "" {
		server.Name = strings.TrimSuffix(entry.HostName, ".")
	}
	return server
}
