// Command brailletypod is the typo correction daemon.
// It listens on a Unix domain socket for requests from the Braille keyboard,
// finds the misspelling in the focused field and cycles through its
// replacement candidates.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	brailletypo "github.com/Paranoid-AF/brailletypo"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	verbose := flag.Bool("verbose", false, "log every request and response to stderr")
	check := flag.Bool("check", false, "validate the configuration and exit")
	socket := flag.String("socket", "", "socket path (overrides $BRAILLETYPO_SOCKET)")
	flag.Parse()

	if *showVersion {
		fmt.Println("brailletypod", Version)
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *check {
		os.Exit(checkConfig())
	}
	if cfg, err := brailletypo.LoadConfig(); err == nil {
		for _, w := range brailletypo.ValidateConfig(cfg) {
			slog.Warn("config", "warning", w)
		}
	}

	socketPath := *socket
	if socketPath == "" {
		socketPath = resolveSocketPath()
	}
	slog.Info("starting", "socket", socketPath, "config", brailletypo.ConfigPath())

	srv, err := NewServer(socketPath)
	if err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
	defer srv.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		for sig := range sigCh {
			if sig == syscall.SIGHUP {
				srv.reloadHandler()
				continue
			}
			slog.Info("shutting down", "signal", sig.String())
			srv.Close()
			os.Exit(0)
		}
	}()

	slog.Info("ready")
	if err := srv.Serve(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// checkConfig prints validation warnings and returns the process exit code.
func checkConfig() int {
	cfg, err := brailletypo.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	warnings := brailletypo.ValidateConfig(cfg)
	for _, w := range warnings {
		fmt.Println("warning:", w)
	}
	if len(warnings) > 0 {
		return 1
	}
	fmt.Println("config ok:", brailletypo.ConfigPath())
	return 0
}

func resolveSocketPath() string {
	if path := os.Getenv("BRAILLETYPO_SOCKET"); path != "" {
		return path
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir + "/brailletypo.sock"
	}
	return fmt.Sprintf("/tmp/brailletypo-%d.sock", os.Getuid())
}
