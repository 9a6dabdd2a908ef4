package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carlot/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site SSH server",
	Long: `Start an SSH server that serves the site to every connection.

Each SSH user gets their own session, theme preference and game. Scores and
form submissions go to the shared database (--db).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses ~/.carlot/host_key, generating it on first start

Examples:
  carlot serve                           # Listen on :23234 with auto-generated key
  carlot serve --ssh :2222               # Listen on port 2222
  carlot serve --host-key ./my_host_key  # Use specific host key
  carlot serve --db ./carlot.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "~/.carlot/host_key", "Path to host key file (generated when missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	dodgeCfg, siteCfg, err := loadConfigs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(false)
	defer closeLog()
	logger.SetPrefix("carlot-ssh")

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: expandHome(flagHostKey),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Site:        siteCfg,
		Dodge:       dodgeCfg,
		TickRate:    flagFPS,
		Store:       store,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting %s SSH server on %s\n", siteCfg.Title, cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
