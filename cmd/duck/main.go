package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/leterax/go-duck/pkg/config"
	"github.com/leterax/go-duck/pkg/render"
	"github.com/sirupsen/logrus"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.toml", "Path to the configuration file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	log.Level, _ = cfg.LogLevel()
	if *debug {
		log.Level = logrus.DebugLevel
	}

	if cfg.Debug.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Debug.SentryDSN}); err != nil {
			log.Warnf("sentry disabled: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if cfg.Debug.StatsView {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(cfg.Debug.StatsViewAddr))

		mgr := statsview.New()
		go mgr.Start()
		log.Infof("stats view listening on http://%s/debug/statsview", cfg.Debug.StatsViewAddr)
	}

	if err := run(cfg, log); err != nil {
		log.Errorln(err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

// run opens the window and runs the game until the window is closed or the
// terminate key is pressed. A panic in the loop is reported and returned.
func run(cfg config.Config, log *logrus.Logger) (err error) {
	renderer, err := render.NewRenderer(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer renderer.Cleanup()

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("game loop panic: %v", r)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("ticks", fmt.Sprint(renderer.World().Ticks()))
			})
			hub.Recover(r)
			hub.Flush(time.Second * 5)
			err = errors.New("game loop panicked")
		}
	}()

	log.Infof("%s started: %s to toggle the cursor, %s to exit", cfg.Window.Title, cfg.Controls.CameraToggle, cfg.Controls.Terminate)
	renderer.Run()
	return nil
}
