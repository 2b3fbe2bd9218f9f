package main

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frotz/internal/config"
	"github.com/vovakirdan/frotz/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the frotz SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the puzzle picker.
Solves are stored per server and tagged with the SSH user name.

Examples:
  frotz serve                           # Listen on the configured host and port
  frotz serve --ssh :2222               # Listen on port 2222
  frotz serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	addr := flagSSHAddr
	if addr == "" {
		addr = net.JoinHostPort(appConfig.Server.Host, strconv.Itoa(appConfig.Server.Port))
	}
	hostKey := flagHostKey
	if hostKey == "" {
		hostKey = config.ExpandHome(appConfig.Server.HostKeyPath)
	}

	// The server opens its own store; this one only feeds the campaign.
	store := openStore()
	campaign, err := loadCampaign(store)
	if store != nil {
		store.Close()
	}
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		DBPath:      config.ExpandHome(appConfig.Storage.DBPath),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Runtime:     runtimeConfig(),
		Game:        gameSettings(campaign),
		Logger:      logger.WithPrefix("frotz-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting frotz SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
