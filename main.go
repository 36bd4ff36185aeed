package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/hr-toolkit/cliparse"
	"github.com/danielhkuo/hr-toolkit/draw"
	"github.com/danielhkuo/hr-toolkit/middleware"
	"github.com/danielhkuo/hr-toolkit/router"
	"github.com/danielhkuo/hr-toolkit/session"
	"github.com/danielhkuo/hr-toolkit/storage"
)

func main() {
	var err error

	// Load .env if present; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the roster slot
	slot, err := storage.Open(cfg)
	if err != nil {
		slog.Error("storage open failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer slot.Close()
	slog.Info("Storage ready", "type", cfg.DatabaseType)

	var countdown draw.Countdown = draw.Instant{}
	if cfg.SpinTicks > 0 {
		countdown = draw.NewTimed(cfg.SpinTicks)
	}

	sess, err := session.Load(context.Background(), slot, session.WithCountdown(countdown))
	if err != nil {
		slog.Error("session load failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(sess, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
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
	slog.Info("Listening", "port", cfg.Port, "admin_key_set", cfg.AdminKey != "")
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
