// Package netcheck provides network diagnostics for source hosts:
// reachability pings, TCP port scans, CIDR ping sweeps and DNS lookups.
package netcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/netip"
	"os/exec"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/scriptvault-labs/scriptvault-cli/internal/logger"
)

const (
	pingTimeout = 10 * time.Second
	scanTimeout = 1 * time.Second
)

// Result records a single completed check for the summary report.
type Result struct {
	Type      string
	Target    string
	Reachable bool
	Detail    string
	CheckedAt time.Time
}

// Dialer abstracts TCP dialing so port scans can be tested without
// open sockets.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Analyzer runs network diagnostics and accumulates results.
type Analyzer struct {
	dialer  Dialer
	now     func() time.Time
	results []Result
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDialer overrides the dialer used for port scans.
func WithDialer(d Dialer) Option {
	return func(a *Analyzer) { a.dialer = d }
}

// WithClock overrides the clock used for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// NewAnalyzer creates an Analyzer with default networking.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		dialer: &net.Dialer{Timeout: scanTimeout},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ping runs the system ping binary against host and reports whether it
// answered. The raw ping output is returned for display.
func (a *Analyzer) Ping(ctx context.Context, host string, count int) (bool, string, error) {
	if host == "" {
		return false, "", fmt.Errorf("ping: host is required")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	countFlag := "-c"
	if runtime.GOOS == "windows" {
		countFlag = "-n"
	}

	cmd := exec.CommandContext(ctx, "ping", countFlag, strconv.Itoa(count), host)
	out, err := cmd.CombinedOutput()
	reachable := err == nil

	a.record(Result{
		Type:      "ping",
		Target:    host,
		Reachable: reachable,
		Detail:    fmt.Sprintf("%d packets", count),
	})

	// A non-zero exit just means the host did not answer.
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return false, string(out), fmt.Errorf("running ping: %w", err)
	}
	return reachable, string(out), nil
}

// ScanPorts probes each port on host over TCP and returns the open ones
// in ascending order.
func (a *Analyzer) ScanPorts(ctx context.Context, host string, ports []int) ([]int, error) {
	if host == "" {
		return nil, fmt.Errorf("scan: host is required")
	}

	var open []int
	for _, port := range ports {
		if err := ctx.Err(); err != nil {
			return open, err
		}
		if a.scanPort(ctx, host, port) {
			open = append(open, port)
			logger.Info("port %d open on %s", port, host)
		}
	}
	sort.Ints(open)

	a.record(Result{
		Type:      "scan",
		Target:    host,
		Reachable: len(open) > 0,
		Detail:    fmt.Sprintf("%d of %d ports open", len(open), len(ports)),
	})
	return open, nil
}

func (a *Analyzer) scanPort(ctx context.Context, host string, port int) bool {
	ctx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	conn, err := a.dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Sweep pings every host address in a CIDR network and returns the
// reachable ones. Network and broadcast addresses are skipped for
// prefixes shorter than /31.
func (a *Analyzer) Sweep(ctx context.Context, cidr string) ([]string, error) {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return nil, fmt.Errorf("parsing network %q: %w", cidr, err)
	}
	prefix = prefix.Masked()

	var reachable []string
	for _, host := range hostAddrs(prefix) {
		if err := ctx.Err(); err != nil {
			return reachable, err
		}
		ok, _, err := a.Ping(ctx, host, 1)
		if err != nil {
			return reachable, err
		}
		if ok {
			reachable = append(reachable, host)
			logger.Info("%s is reachable", host)
		}
	}

	a.record(Result{
		Type:      "sweep",
		Target:    cidr,
		Reachable: len(reachable) > 0,
		Detail:    fmt.Sprintf("%d hosts reachable", len(reachable)),
	})
	return reachable, nil
}

// ResolveDNS resolves hostname to its first IP address.
func (a *Analyzer) ResolveDNS(ctx context.Context, hostname string) (string, error) {
	addrs, err := net.DefaultResolver.LookupHost(ctx, hostname)
	if err != nil {
		a.record(Result{Type: "dns", Target: hostname, Reachable: false})
		return "", fmt.Errorf("resolving %s: %w", hostname, err)
	}

	a.record(Result{Type: "dns", Target: hostname, Reachable: true, Detail: addrs[0]})
	return addrs[0], nil
}

// Results returns the accumulated check results in run order.
func (a *Analyzer) Results() []Result {
	out := make([]Result, len(a.results))
	copy(out, a.results)
	return out
}

// WriteReport writes a Markdown summary of all completed checks.
func (a *Analyzer) WriteReport(w io.Writer) error {
	reached := 0
	for _, r := range a.results {
		if r.Reachable {
			reached++
		}
	}

	fmt.Fprintf(w, "# Network Analysis Report\n\n")
	fmt.Fprintf(w, "Generated: %s\n\n", a.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "- Checks completed: %d\n", len(a.results))
	fmt.Fprintf(w, "- Targets reached: %d\n\n", reached)
	fmt.Fprintf(w, "## Results\n\n")
	for _, r := range a.results {
		status := "unreachable"
		if r.Reachable {
			status = "reachable"
		}
		if r.Detail != "" {
			fmt.Fprintf(w, "- %s %s: %s (%s)\n", r.Type, r.Target, status, r.Detail)
		} else {
			fmt.Fprintf(w, "- %s %s: %s\n", r.Type, r.Target, status)
		}
	}
	return nil
}

func (a *Analyzer) record(r Result) {
	r.CheckedAt = a.now()
	a.results = append(a.results, r)
}

// ParsePorts parses a port spec: either a comma list ("80,443") or an
// inclusive range ("1-1024").
func ParsePorts(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("port spec is empty")
	}

	if strings.Contains(spec, "-") {
		parts := strings.SplitN(spec, "-", 2)
		start, err := parsePort(parts[0])
		if err != nil {
			return nil, err
		}
		end, err := parsePort(parts[1])
		if err != nil {
			return nil, err
		}
		if end < start {
			return nil, fmt.Errorf("invalid port range %q: end before start", spec)
		}
		ports := make([]int, 0, end-start+1)
		for p := start; p <= end; p++ {
			ports = append(ports, p)
		}
		return ports, nil
	}

	var ports []int
	for _, part := range strings.Split(spec, ",") {
		p, err := parsePort(part)
		if err != nil {
			return nil, err
		}
		ports = append(ports, p)
	}
	return ports, nil
}

func parsePort(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", s, err)
	}
	if p < 1 || p > 65535 {
		return 0, fmt.Errorf("port %d out of range", p)
	}
	return p, nil
}

// hostAddrs lists the host addresses in a prefix. For /31 and /32 all
// addresses count as hosts.
func hostAddrs(prefix netip.Prefix) []string {
	var hosts []string
	first := prefix.Addr()
	last := lastAddr(prefix)

	skipEdges := prefix.Addr().Is4() && prefix.Bits() < 31
	for addr := first; prefix.Contains(addr); addr = addr.Next() {
		if skipEdges && (addr == first || addr == last) {
			continue
		}
		hosts = append(hosts, addr.String())
	}
	return hosts
}

func lastAddr(prefix netip.Prefix) netip.Addr {
	bytes := prefix.Addr().AsSlice()
	bits := prefix.Bits()
	for i := bits / 8; i < len(bytes); i++ {
		mask := byte(0xff)
		if i == bits/8 && bits%8 != 0 {
			mask = 0xff >> (bits % 8)
		}
		bytes[i] |= mask
	}
	addr, _ := netip.AddrFromSlice(bytes)
	return addr
}
