// Command stickmon reads the analog sticks of an evdev gamepad and logs
// the directional buttons, output summaries and set switches they drive.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/sets"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// closeLogs flushes the log file on every exit path.
var closeLogs = stickmap.Close

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain runs the tool and returns the process exit code: 2 for bad
// configuration, 1 when the session fails.
func realMain(args []string) int {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	stickmap.Init(stickmap.Options{
		LogPath:  cfg.LogPath,
		LogLevel: cfg.LogLevel,
		Debug:    cfg.Debug,
		Language: cfg.Language,
	})
	defer closeLogs()

	if err := run(cfg); err != nil {
		stickmap.GetLogger().Error("stickmon stopped", "error", err)
		return 1
	}
	return 0
}

// newSession creates both sticks, applies the profile and wires set switching.
func newSession(cfg config, logger *slog.Logger) ([]*stickmap.Stick, *sets.Switcher, error) {
	sticks := []*stickmap.Stick{
		stickmap.NewStick(0, stickmap.StickOptions{}),
		stickmap.NewStick(1, stickmap.StickOptions{}),
	}

	if cfg.Profile != "" {
		profile, err := stickmap.LoadProfile(cfg.Profile)
		if err != nil {
			return nil, nil, err
		}
		if err := profile.Apply(sticks...); err != nil {
			return nil, nil, err
		}
		logger.Info("Profile applied", "path", cfg.Profile, "name", profile.Name)
	}

	switcher := sets.New(sets.Set(cfg.InitialSet))
	switcher.OnChange(func(from, to sets.Set) {
		logger.Info("Active set changed", "from", int(from), "to", int(to))
	})

	for _, stick := range sticks {
		switcher.Attach(stick)

		stick.OnDirectionChanged(func(from, to constants.Direction) {
			b := stick.Button(to)
			if b == nil {
				logger.Info("Stick centered", "stick", stick.PartialName(true, true))
				return
			}
			logger.Info("Stick direction",
				"button", b.DisplayName(true, true),
				"distance", b.DistanceFromDeadZone(),
				"mouse_distance", b.MouseDistanceFromDeadZone(),
				"summary", b.CalculatedActiveZoneSummary(),
			)
		})
	}

	return sticks, switcher, nil
}

func run(cfg config) error {
	logger := stickmap.GetLogger()

	sticks, _, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	source, err := openSource(cfg.Device, cfg.Grab)
	if err != nil {
		return err
	}
	logger.Info("stickmon started", "device", cfg.Device, "name", source.Name())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)
	defer signal.Stop(sigCh)

	// The reader only produces frames; sticks are updated on this goroutine.
	frames := make(chan frame, 16)
	readErr := make(chan error, 1)
	go func() {
		defer close(frames)
		for {
			f, err := source.Next()
			if err != nil {
				readErr <- err
				return
			}
			frames <- f
		}
	}()

	for {
		select {
		case <-sigCh:
			logger.Info("Shutting down...")
			source.Close()
			for range frames {
			}
			return nil

		case f, ok := <-frames:
			if !ok {
				err := <-readErr
				if errors.Is(err, os.ErrClosed) {
					return nil
				}
				return fmt.Errorf("read %s: %w", cfg.Device, err)
			}
			for i, s := range sticks {
				s.Update(f[i][0], f[i][1])
			}
		}
	}
}
