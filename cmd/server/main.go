// Battle Arena Server - Main Entry Point
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"battleserver/internal/config"
	"battleserver/internal/server"
	"battleserver/pkg/logger"
)

var (
	version   = "1.0.0"
	buildTime = "dev"
	port      = flag.Int("port", 30130, "Server port")
	host      = flag.String("host", "", "Server host (empty for all interfaces)")
	configDir = flag.String("config", "", "Directory containing battleserver.yaml")
	logLevel  = flag.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	logFile   = flag.String("log-file", "", "Log file path (optional)")
	help      = flag.Bool("help", false, "Show help information")
	ver       = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if *ver {
		showVersion()
		return
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := initLogging(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	logger.Server.Info("Starting Battle Arena Server v%s", version)

	gameServer := server.NewServer(*cfg)
	if err := gameServer.Listen(); err != nil {
		logger.Server.Fatal("Server failed to start: %v", err)
	}

	setupGracefulShutdown(gameServer)

	if err := gameServer.Serve(); err != nil && !errors.Is(err, server.ErrServerClosed) {
		logger.Server.Fatal("Server stopped unexpectedly: %v", err)
	}
	logger.Server.Close()
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "host":
			cfg.Host = *host
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		}
	})
}

// initLogging sets up the logging system
func initLogging(cfg *config.Config) error {
	logger.SetGlobalLogLevel(logger.ParseLevel(cfg.LogLevel))

	if cfg.LogFile != "" {
		if err := logger.Server.SetFile(cfg.LogFile); err != nil {
			return fmt.Errorf("failed to set log file: %w", err)
		}
		logger.Server.Info("Logging to file: %s", cfg.LogFile)
	} else {
		// console-only logging is fine if ./logs can't be created
		if err := logger.InitializeFileLogging("./logs"); err != nil {
			logger.Server.Warn("Could not initialize file logging: %v", err)
		}
	}

	return nil
}

// setupGracefulShutdown handles graceful shutdown on interrupt signals
func setupGracefulShutdown(gameServer *server.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Server.Info("Received shutdown signal, stopping server...")
		gameServer.Stop()
	}()
}

// showHelp displays help information
func showHelp() {
	fmt.Printf(`Battle Arena Server v%s

USAGE:
    %s [OPTIONS]

OPTIONS:
    -port int            Server port (default 30130)
    -host string         Server host (default all interfaces)
    -config string       Directory containing battleserver.yaml (also searches . and ./config)
    -log-level string    Set log level (DEBUG, INFO, WARN, ERROR) (default "INFO")
    -log-file string     Set log file path (optional)
    -help                Show this help message
    -version             Show version information

EXAMPLES:
    # Start server with default settings
    %s

    # Start on a specific port with debug logging
    %s -port 9000 -log-level DEBUG

    # Connect with any line-oriented TCP client
    nc localhost 30130

PROTOCOL:
    The first line a client sends is its name. Once two players are
    paired, the player whose turn it is may send:
        a          attack for 2-6 damage
        p          power move: triple damage, lands half the time
        y          unlock one chat message, sent on the next line
`, version, os.Args[0], os.Args[0], os.Args[0])
}

// showVersion displays version information
func showVersion() {
	fmt.Printf(`Battle Arena Server
Version: %s
Build Time: %s
`, version, buildTime)
}
