package netcheck

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDialer answers only the ports in open.
type fakeDialer struct {
	open map[string]bool
}

func (d *fakeDialer) DialContext(_ context.Context, _, address string) (net.Conn, error) {
	if d.open[address] {
		client, server := net.Pipe()
		go server.Close()
		return client, nil
	}
	return nil, fmt.Errorf("connection refused")
}

func TestParsePorts_CommaList(t *testing.T) {
	ports, err := ParsePorts("80,443,8080")
	require.NoError(t, err)
	assert.Equal(t, []int{80, 443, 8080}, ports)
}

func TestParsePorts_Range(t *testing.T) {
	ports, err := ParsePorts("20-25")
	require.NoError(t, err)
	assert.Equal(t, []int{20, 21, 22, 23, 24, 25}, ports)
}

func TestParsePorts_Single(t *testing.T) {
	ports, err := ParsePorts("22")
	require.NoError(t, err)
	assert.Equal(t, []int{22}, ports)
}

func TestParsePorts_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "empty", spec: ""},
		{name: "not a number", spec: "http"},
		{name: "zero", spec: "0"},
		{name: "too large", spec: "70000"},
		{name: "reversed range", spec: "1024-80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePorts(tt.spec)
			assert.Error(t, err)
		})
	}
}

func TestAnalyzer_ScanPorts(t *testing.T) {
	dialer := &fakeDialer{open: map[string]bool{
		"10.0.0.5:22":  true,
		"10.0.0.5:443": true,
	}}
	a := NewAnalyzer(WithDialer(dialer))

	open, err := a.ScanPorts(context.Background(), "10.0.0.5", []int{22, 80, 443, 8080})
	require.NoError(t, err)
	assert.Equal(t, []int{22, 443}, open)

	results := a.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "scan", results[0].Type)
	assert.True(t, results[0].Reachable)
	assert.Contains(t, results[0].Detail, "2 of 4")
}

func TestAnalyzer_ScanPorts_NoneOpen(t *testing.T) {
	a := NewAnalyzer(WithDialer(&fakeDialer{}))

	open, err := a.ScanPorts(context.Background(), "10.0.0.5", []int{80})
	require.NoError(t, err)
	assert.Empty(t, open)

	results := a.Results()
	require.Len(t, results, 1)
	assert.False(t, results[0].Reachable)
}

func TestAnalyzer_ScanPorts_Cancelled(t *testing.T) {
	a := NewAnalyzer(WithDialer(&fakeDialer{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.ScanPorts(ctx, "10.0.0.5", []int{80})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzer_ScanPorts_EmptyHost(t *testing.T) {
	a := NewAnalyzer(WithDialer(&fakeDialer{}))
	_, err := a.ScanPorts(context.Background(), "", []int{80})
	assert.Error(t, err)
}

func TestAnalyzer_WriteReport(t *testing.T) {
	fixed := time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC)
	a := NewAnalyzer(
		WithDialer(&fakeDialer{open: map[string]bool{"10.0.0.5:22": true}}),
		WithClock(func() time.Time { return fixed }),
	)

	_, err := a.ScanPorts(context.Background(), "10.0.0.5", []int{22})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, a.WriteReport(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Network Analysis Report")
	assert.Contains(t, out, "Generated: 2025-07-04 10:00:00")
	assert.Contains(t, out, "- Checks completed: 1")
	assert.Contains(t, out, "- Targets reached: 1")
	assert.Contains(t, out, "scan 10.0.0.5: reachable")
}

func TestHostAddrs_SkipsNetworkAndBroadcast(t *testing.T) {
	prefix := netip.MustParsePrefix("192.168.1.0/30")
	hosts := hostAddrs(prefix)
	assert.Equal(t, []string{"192.168.1.1", "192.168.1.2"}, hosts)
}

func TestHostAddrs_Slash32(t *testing.T) {
	prefix := netip.MustParsePrefix("192.168.1.7/32")
	hosts := hostAddrs(prefix)
	assert.Equal(t, []string{"192.168.1.7"}, hosts)
}

func TestLastAddr(t *testing.T) {
	prefix := netip.MustParsePrefix("10.0.0.0/24")
	assert.Equal(t, "10.0.0.255", lastAddr(prefix).String())
}
