package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/dhwani/internal/app"
	"github.com/llehouerou/dhwani/internal/config"
	"github.com/llehouerou/dhwani/internal/icons"
	"github.com/llehouerou/dhwani/internal/logging"
	"github.com/llehouerou/dhwani/internal/mpris"
	"github.com/llehouerou/dhwani/internal/notify"
	"github.com/llehouerou/dhwani/internal/playback"
	"github.com/llehouerou/dhwani/internal/player"
	"github.com/llehouerou/dhwani/internal/state"
	"github.com/llehouerou/dhwani/internal/stderr"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "dhwani:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	icons.Init(cfg.Icons)

	log, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// ALSA and the decoders write to fd 2 and would corrupt the TUI.
	if err := stderr.Start(log); err != nil {
		log.Warn("capture stderr", zap.Error(err))
	}
	defer stderr.Stop()

	stateMgr, err := state.Open(log)
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	service := playback.New(player.New(), playback.Options{
		Store:  stateMgr,
		Logger: log,
	})
	defer service.Close()

	restoreVolume(service, stateMgr, log)

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(service, log)
		if err != nil {
			log.Warn("start mpris", zap.Error(err))
		} else {
			defer adapter.Close()
		}
	}

	if cfg.NotificationsEnabled() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		np := notify.NewNowPlaying(service, notify.New(), log)
		go np.Run(ctx, service.Subscribe())
	}

	folder, err := startFolder(args, cfg, stateMgr)
	if err != nil {
		return err
	}

	m := app.New(app.Options{
		Config:  cfg,
		Service: service,
		State:   stateMgr,
		Logger:  log,
		Folder:  folder,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func restoreVolume(service playback.Service, stateMgr state.Interface, log *zap.Logger) {
	v, err := stateMgr.GetVolume()
	if err != nil {
		log.Warn("load volume", zap.Error(err))
		return
	}
	service.SetVolume(v.Volume)
	service.SetMuted(v.Muted)
}

// startFolder picks the folder to open: the command-line argument, then the
// last folder if it still exists, then the configured default, then the
// working directory.
func startFolder(args []string, cfg *config.Config, stateMgr state.Interface) (string, error) {
	if len(args) > 0 {
		return filepath.Abs(args[0])
	}
	if last, err := stateMgr.GetLastFolder(); err == nil && last != "" {
		if info, statErr := os.Stat(last); statErr == nil && info.IsDir() {
			return last, nil
		}
	}
	if cfg.DefaultFolder != "" {
		return cfg.DefaultFolder, nil
	}
	return os.Getwd()
}
