package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	haikufs "github.com/corey/haikus/internal/adapters/fsnotify"
	"github.com/corey/haikus/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and log fresh haikus as files change",
	Long:  "Watches a directory tree (cwd when omitted) and logs every haiku the first time it appears. Runs until interrupted.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	svc, cfg, err := loadService()
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	watcher, err := haikufs.NewWatcher(cfg.Scan.Extensions, cfg.Watch.Debounce)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	ws := app.NewWatchService(svc, watcher, store, logger)
	if err := ws.Run(root); err != nil {
		watcher.Stop()
		return err
	}

	// Block until SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	return ws.Stop()
}
