package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jfuerth/carnivorous-teapot/internal/config"
	"github.com/jfuerth/carnivorous-teapot/internal/games/teapot"
	"github.com/jfuerth/carnivorous-teapot/internal/platform/tui"
	"github.com/jfuerth/carnivorous-teapot/internal/registry"
	"github.com/jfuerth/carnivorous-teapot/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server so players can connect and play remotely.

Every connection gets its own game instance; all players share one
leaderboard. Audio stays off for SSH sessions since there is no remote
speaker to play it on.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.teapot/host_key

Examples:
  teapot serve                           # Listen on :23234
  teapot serve --ssh :2222               # Listen on port 2222
  teapot serve --db ./scores.db          # Use specific database

Players connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "teapot",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	gameCfg, err := config.LoadTeapot("")
	if err != nil {
		logger.Warn("could not load gameplay config", "error", err)
		gameCfg = config.DefaultTeapotConfig()
	}

	factory := func() registry.Game {
		created, buildErr := registry.Create(gameID)
		if buildErr != nil {
			logger.Error("cannot build session game", "error", buildErr)
			return nil
		}
		if g, ok := created.(*teapot.Game); ok {
			g.SetConfig(gameCfg)
			g.SetLogger(logger)
			g.SetScoreStore(storage.NewHighScoreKeeper(store, gameID, logger))
		}
		return created
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}, factory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting teapot SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()
	if store != nil {
		store.Close()
	}
	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}
