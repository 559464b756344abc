package main

import (
	"fmt"
	"net"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/ptable/internal/discovery"
	"github.com/muurk/ptable/internal/preview"
	"github.com/muurk/ptable/internal/ui"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
}

// serveCmd runs the live preview server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live-reloading preview",
	Long: `Start an HTTP server that renders the table on every request.

Open the printed URL in a browser to pick themes and layouts. Local source
documents are watched, and open pages reload when they change. With
--advertise the server is announced over mDNS so 'ptable scan' can find it.`,
	Example: `  # Preview on port 8080
  ptable serve

  # Listen on all interfaces and announce on the LAN
  ptable serve --addr :9000 --advertise --name "ptable on studio"`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "listen address")
	serveCmd.Flags().Bool("watch", true, "reload when local source documents change")
	serveCmd.Flags().Bool("advertise", false, "announce the server over mDNS")
	serveCmd.Flags().String("name", "", "mDNS instance name (default \"ptable on <hostname>\")")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	watch, _ := cmd.Flags().GetBool("watch")

	srv := preview.New(newLoader(), preview.Config{
		Addr:   addr,
		Theme:  themeName(),
		Layout: layoutName(),
		Watch:  watch,
	})

	ln, err := srv.Listen()
	if err != nil {
		return err
	}
	port := ln.Addr().(*net.TCPAddr).Port

	header := ui.NewHeader("Preview server", "ptable serve",
		ui.Detail{Key: "URL", Value: previewURL(ln.Addr().(*net.TCPAddr))},
		ui.Detail{Key: "Theme", Value: themeName()},
		ui.Detail{Key: "Layout", Value: layoutName()},
		ui.Detail{Key: "Watching", Value: strconv.FormatBool(watch)},
	)
	fmt.Fprintln(cmd.OutOrStdout(), header.Render())

	if advertise, _ := cmd.Flags().GetBool("advertise"); advertise {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = defaultInstanceName()
		}
		if err := discovery.Advertise(cmd.Context(), name, port); err != nil {
			ln.Close()
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop.")
	return srv.Serve(cmd.Context(), ln)
}

func previewURL(addr *net.TCPAddr) string {
	host := "localhost"
	if addr.IP != nil && !addr.IP.IsUnspecified() && !addr.IP.IsLoopback() {
		host = addr.IP.String()
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(addr.Port)) + "/"
}

func defaultInstanceName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "ptable"
	}
	return "ptable on " + host
}

// scanCmd finds advertised preview servers
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find preview servers on the local network",
	Long: `Browse mDNS for preview servers started with 'ptable serve --advertise'
and list their URLs.`,
	Example: `  # Scan for 5 seconds (default)
  ptable scan

  # Longer scan for busy networks
  ptable scan --timeout 15`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Int("timeout", int(discovery.DefaultScanTimeout/time.Second), "scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetInt("timeout")
	if timeout <= 0 {
		return fmt.Errorf("invalid timeout %d: must be positive", timeout)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning for preview servers (timeout: %ds)...\n\n", timeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(timeout) * time.Second
	servers, err := scanner.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(servers) == 0 {
		fmt.Fprintln(out, "No preview servers found.")
		fmt.Fprintln(out, "\nTroubleshooting:")
		fmt.Fprintln(out, "  - Start one with 'ptable serve --advertise --addr :8080'")
		fmt.Fprintln(out, "  - Check that multicast traffic is allowed on this network")
		fmt.Fprintln(out, "  - Try increasing --timeout")
		return nil
	}

	sort.Slice(servers, func(i, j int) bool { return servers[i].Name < servers[j].Name })

	rows := make([][]string, 0, len(servers))
	for _, s := range servers {
		rows = append(rows, []string{s.Name, s.URL(), s.Version})
	}
	fmt.Fprintln(out, ui.TableView([]string{"Name", "URL", "Version"}, rows))
	return nil
}
