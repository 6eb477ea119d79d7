package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/platform/tui"
	"github.com/vovakirdan/led-arcade/internal/server"
)

var (
	flagAddr        string
	flagSSHAddr     string
	flagHostKey     string
	flagToken       string
	flagGame        string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the grid with the HTTP/WebSocket API",
	Long: `Run the active game continuously and serve it over the network.

HTTP API (bearer token):
  GET  /api/status           POST /api/game
  POST /api/tuning           POST /api/background
  POST /api/save             POST /api/defaults
  GET  /api/scores/{game}

WebSocket:
  GET /ws, first message {"cmd":"auth","token":"..."}

With --ssh, every SSH session gets a terminal panel of the same grid.

Examples:
  ledgrid serve                          # HTTP on the configured address
  ledgrid serve --addr :9000             # HTTP on port 9000
  ledgrid serve --ssh :23234             # Also accept SSH sessions
  ledgrid serve --token secret --game snake

Connect over SSH with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "HTTP listen address (default: from config)")
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), empty disables SSH")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagToken, "token", "", "API and WebSocket auth token (default: from config)")
	serveCmd.Flags().StringVar(&flagGame, "game", "tetris", "Game to start with")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "SSH idle timeout in minutes before disconnecting")
}

// applyServeFlags layers the serve flags over the loaded server settings.
func applyServeFlags(cfg *config.Config) {
	if flagAddr != "" {
		cfg.Server.HTTPAddr = flagAddr
	}
	if flagSSHAddr != "" {
		cfg.Server.SSHAddr = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagToken != "" {
		cfg.Server.AuthToken = flagToken
	}
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("ledgrid")

	live, err := loadLive(applyServeFlags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := live.Get()
	if cfg.Server.AuthToken == "" {
		logger.Warn("auth token is empty, API and WebSocket are open")
	}

	runner, err := newRunner(live, flagGame, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := server.Options{
		Runner: runner,
		Live:   live,
		Logger: logger,
		Token:  cfg.Server.AuthToken,
	}
	store := openStore(cfg.Storage.DBPath, logger)
	if store != nil {
		defer store.Close()
		runner.SetResultSaver(store)
		opts.Scores = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 3)
	go func() {
		errc <- runner.Run(ctx)
	}()

	srv := server.New(opts)
	go func() {
		errc <- srv.ListenAndServe(ctx, cfg.Server.HTTPAddr)
	}()
	running := 2

	if cfg.Server.SSHAddr != "" {
		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = cfg.Server.SSHAddr
		sshCfg.HostKeyPath = cfg.Server.HostKeyPath
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

		sshSrv, sshErr := tui.NewSSHServer(sshCfg, runner)
		if sshErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", sshErr)
			os.Exit(1)
		}
		go func() {
			errc <- sshSrv.ListenAndServe(ctx)
		}()
		running++
	}

	logger.Info("ledgrid serving", "http", cfg.Server.HTTPAddr, "ssh", cfg.Server.SSHAddr, "game", runner.ActiveGame())

	failed := false
	for i := 0; i < running; i++ {
		if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server error", "error", err)
			failed = true
			stop()
		}
	}
	if failed {
		os.Exit(1)
	}
}
