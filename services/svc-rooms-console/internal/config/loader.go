package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

const redacted = "[REDACTED]"

type Loader struct {
	mu               sync.Mutex
	cfg              *ServiceConfig
	out              io.Writer
	configSignalChan chan os.Signal
	reloadErrors     chan error
}

func NewLoader(cfg *ServiceConfig) *Loader {
	return &Loader{
		cfg:              cfg,
		out:              os.Stdout,
		configSignalChan: make(chan os.Signal, 1),
		reloadErrors:     make(chan error, 1),
	}
}

func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service configuration: %w", err)
	}

	return cfg, nil
}

// WatchConfigSignals dumps the configuration on SIGUSR1 and reloads the
// logging settings on SIGHUP until ctx is done.
func (l *Loader) WatchConfigSignals(ctx context.Context) <-chan error {
	signal.Notify(l.configSignalChan, syscall.SIGHUP, syscall.SIGUSR1)

	go func() {
		defer signal.Stop(l.configSignalChan)
		defer close(l.reloadErrors)

		for {
			select {
			case <-ctx.Done():
				return

			case sig := <-l.configSignalChan:
				switch sig {
				case syscall.SIGHUP:
					l.reportReloadStatus(l.Reload())

				case syscall.SIGUSR1:
					l.DumpConfig()
				}
			}
		}
	}()

	return l.reloadErrors
}

// Reload re-reads the environment and applies the settings that can change
// at runtime. Everything else needs a restart.
func (l *Loader) Reload() error {
	fresh := &ServiceConfig{}
	if err := envconfig.Process("", fresh); err != nil {
		return fmt.Errorf("unable to parse service configuration: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.cfg.Logging = fresh.Logging
	logger.SetLevel(fresh.Logging.Level)

	return nil
}

func (l *Loader) DumpConfig() {
	l.mu.Lock()
	snapshot := *l.cfg
	l.mu.Unlock()

	if snapshot.RoomsAPI.Token != "" {
		snapshot.RoomsAPI.Token = redacted
	}

	configJSON, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(l.out, "Error marshaling config: %v\n", err)

		return
	}

	_, _ = fmt.Fprintf(l.out, "\n=== Configuration Dump ===\n%s\n=== End Configuration ===\n\n", string(configJSON))
}

func (l *Loader) reportReloadStatus(err error) {
	select {
	case l.reloadErrors <- err:
	default:
	}
}
