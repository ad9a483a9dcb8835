package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-jump/internal/config"
	"github.com/vovakirdan/color-jump/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Color Jump SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a mode picker menu and its
own game instance. Scores are recorded under the SSH user name and all
users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.colorjump/host_key

Examples:
  colorjump serve                           # Listen on COLORJUMP_SSH_ADDR
  colorjump serve --ssh :2222               # Listen on port 2222
  colorjump serve --host-key ./my_host_key  # Use specific host key
  colorjump serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func registerServeFlags(s config.Settings) {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", s.SSHAddr, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", s.HostKeyPath, "Path to host key file (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", s.IdleTimeout, "Idle time before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	preset, _ := config.ParsePreset(flagDifficulty)
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
		Preset:      preset,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Color Jump SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
