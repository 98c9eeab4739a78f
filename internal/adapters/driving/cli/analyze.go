package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scriptvault-labs/scriptvault-cli/internal/netcheck"
)

var (
	analyzePing   string
	analyzeScan   string
	analyzePorts  string
	analyzeSweep  string
	analyzeDNS    string
	analyzeOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run network diagnostics against source hosts",
	Long: `Runs network diagnostics: reachability pings, TCP port scans,
CIDR ping sweeps and DNS lookups. Useful for checking whether a scrape
target is reachable before configuring it as a source.

Examples:
  scriptvault analyze --ping example.com
  scriptvault analyze --scan 10.0.0.5 --ports 80,443
  scriptvault analyze --scan 10.0.0.5 --ports 1-1024
  scriptvault analyze --sweep 192.168.1.0/24
  scriptvault analyze --dns raw.githubusercontent.com
  scriptvault analyze --ping example.com --output report.md`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzePing, "ping", "", "host to ping")
	analyzeCmd.Flags().StringVar(&analyzeScan, "scan", "", "host to port-scan")
	analyzeCmd.Flags().StringVar(&analyzePorts, "ports", "", "ports to scan (80,443 or 1-1024)")
	analyzeCmd.Flags().StringVar(&analyzeSweep, "sweep", "", "network to ping-sweep (CIDR)")
	analyzeCmd.Flags().StringVar(&analyzeDNS, "dns", "", "hostname to resolve")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "write a Markdown report to this path")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzePing == "" && analyzeScan == "" && analyzeSweep == "" && analyzeDNS == "" {
		return errors.New("nothing to do: pass --ping, --scan, --sweep or --dns")
	}
	if analyzeScan != "" && analyzePorts == "" {
		return errors.New("--scan requires --ports")
	}

	ctx := cmd.Context()
	analyzer := netcheck.NewAnalyzer()

	if analyzePing != "" {
		reachable, output, err := analyzer.Ping(ctx, analyzePing, 4)
		if err != nil {
			return err
		}
		cmd.Println(output)
		if !reachable {
			cmd.Printf("%s did not answer.\n", analyzePing)
		}
	}

	if analyzeDNS != "" {
		ip, err := analyzer.ResolveDNS(ctx, analyzeDNS)
		if err != nil {
			cmd.Printf("Could not resolve %s\n", analyzeDNS)
		} else {
			cmd.Printf("%s resolves to %s\n", analyzeDNS, ip)
		}
	}

	if analyzeSweep != "" {
		hosts, err := analyzer.Sweep(ctx, analyzeSweep)
		if err != nil {
			return err
		}
		cmd.Printf("Found %d reachable hosts\n", len(hosts))
	}

	if analyzeScan != "" {
		ports, err := netcheck.ParsePorts(analyzePorts)
		if err != nil {
			return err
		}
		open, err := analyzer.ScanPorts(ctx, analyzeScan, ports)
		if err != nil {
			return err
		}
		if len(open) == 0 {
			cmd.Printf("No open ports on %s\n", analyzeScan)
		} else {
			cmd.Printf("Open ports on %s: %s\n", analyzeScan, joinPorts(open))
		}
	}

	if analyzeOutput != "" {
		f, err := os.Create(analyzeOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", analyzeOutput, err)
		}
		defer f.Close()
		if err := analyzer.WriteReport(f); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		cmd.Printf("Report saved to %s\n", analyzeOutput)
	}

	return nil
}

func joinPorts(ports []int) string {
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(parts, ", ")
}
