package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quorate/cliparse"
	"github.com/danielhkuo/quorate/consensus"
	"github.com/danielhkuo/quorate/middleware"
	"github.com/danielhkuo/quorate/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(newLogHandler(os.Stderr, cfg.LogFormat)))

	// Create router
	mux := router.NewRouter(cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "rules", consensus.Version, "metrics", cfg.Metrics)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// newLogHandler picks text output for terminals and JSON otherwise,
// unless the format is set explicitly
func newLogHandler(out *os.File, format string) slog.Handler {
	switch format {
	case cliparse.LogFormatText:
		return slog.NewTextHandler(out, nil)
	case cliparse.LogFormatJSON:
		return slog.NewJSONHandler(out, nil)
	}
	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		return slog.NewTextHandler(out, nil)
	}
	return slog.NewJSONHandler(out, nil)
}
