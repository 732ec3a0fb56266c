package payfast

import (
	"context"
	"net"
	"net/netip"
	"strings"
	"time"
)

// Hostnames the gateway sends ITNs from. The addresses behind them rotate.
var gatewayHosts = []string{
	"www.payfast.co.za",
	"sandbox.payfast.co.za",
	"w1w.payfast.co.za",
	"w2w.payfast.co.za",
}

// Published ITN source ranges.
var gatewayNetworks = []netip.Prefix{
	netip.MustParsePrefix("197.97.145.144/28"),
	netip.MustParsePrefix("41.74.179.192/27"),
	netip.MustParsePrefix("102.216.36.0/28"),
	netip.MustParsePrefix("102.216.36.128/28"),
	netip.MustParsePrefix("144.126.193.139/32"),
}

const gatewayDomain = ".payfast.co.za"

// Resolver is the subset of *net.Resolver used for origin checks.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// OriginChecker decides whether an ITN came from the gateway.
type OriginChecker struct {
	resolver      Resolver
	hosts         []string
	networks      []netip.Prefix
	allowLoopback bool
	timeout       time.Duration
}

// NewOriginChecker returns a checker for cfg. A nil resolver uses
// net.DefaultResolver. Sandbox mode also trusts loopback callers.
func NewOriginChecker(cfg Config, resolver Resolver) *OriginChecker {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &OriginChecker{
		resolver:      resolver,
		hosts:         gatewayHosts,
		networks:      gatewayNetworks,
		allowLoopback: cfg.Sandbox,
		timeout:       cfg.dnsTimeout(),
	}
}

// Trusted reports whether origin is a gateway address. Static ranges are
// checked first; otherwise the gateway hostnames are resolved, and finally
// the caller's reverse name is forward-confirmed. All lookups share one
// deadline and any lookup failure counts as untrusted.
func (c *OriginChecker) Trusted(ctx context.Context, origin string) bool {
	addr, ok := parseOrigin(origin)
	if !ok {
		return false
	}
	if addr.IsLoopback() {
		return c.allowLoopback
	}
	for _, network := range c.networks {
		if network.Contains(addr) {
			return true
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	for _, host := range c.hosts {
		if c.resolvesTo(ctx, host, addr) {
			return true
		}
		if ctx.Err() != nil {
			return false
		}
	}

	names, err := c.resolver.LookupAddr(ctx, addr.String())
	if err != nil {
		return false
	}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSuffix(name, "."))
		if !strings.HasSuffix(name, gatewayDomain) {
			continue
		}
		if c.resolvesTo(ctx, name, addr) {
			return true
		}
	}
	return false
}

func (c *OriginChecker) resolvesTo(ctx context.Context, host string, addr netip.Addr) bool {
	ips, err := c.resolver.LookupHost(ctx, host)
	if err != nil {
		return false
	}
	for _, ip := range ips {
		resolved, err := netip.ParseAddr(ip)
		if err == nil && resolved.Unmap() == addr {
			return true
		}
	}
	return false
}

func parseOrigin(origin string) (netip.Addr, bool) {
	origin = strings.TrimSpace(origin)
	if addr, err := netip.ParseAddr(origin); err == nil {
		return addr.Unmap(), true
	}
	if addrPort, err := netip.ParseAddrPort(origin); err == nil {
		return addrPort.Addr().Unmap(), true
	}
	return netip.Addr{}, false
}
