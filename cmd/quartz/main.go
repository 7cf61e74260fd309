// Command quartz is a single-window browser shell.
//
// Usage:
//
//	quartz [-config file] [-url address] [-headless] [-debug]
//
// The start address is taken from -url, then $QUARTZ_URL, then the
// config file, then the built-in default.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/gogpu/gg/gpu" // GPU accelerator for the desktop canvas

	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/engine/placeholder"
	"github.com/gogpu/quartz/internal/config"
	"github.com/gogpu/quartz/platform"
	_ "github.com/gogpu/quartz/platform/desktop"
	_ "github.com/gogpu/quartz/platform/headless"
	"github.com/gogpu/quartz/shell"
)

type options struct {
	config   string
	url      string
	headless bool
	debug    bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("quartz", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.config, "config", "", "YAML configuration file")
	fs.StringVar(&o.url, "url", "", "start address")
	fs.BoolVar(&o.headless, "headless", false, "run without a window")
	fs.BoolVar(&o.debug, "debug", false, "debug logging")
	err := fs.Parse(args)
	return o, err
}

// loadConfig merges the config file, the environment and the flags.
func loadConfig(o options, lookup func(string) (string, bool)) (config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return config.Config{}, err
		}
	}
	cfg = cfg.FromEnv(lookup)
	if o.url != "" {
		cfg = cfg.WithStartURL(o.url)
	}
	if o.headless {
		cfg = cfg.WithPlatform(platform.DriverHeadless)
	}
	return cfg, cfg.Validate()
}

func pickPlatform(name string) (platform.Platform, error) {
	if name == "" {
		if p := platform.Drivers.Best(); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("no platform driver available")
	}
	if !platform.Drivers.Has(name) {
		return nil, fmt.Errorf("unknown platform %q (have %v)", name, platform.Drivers.Available())
	}
	return platform.Drivers.Get(name), nil
}

func run(args []string, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	quartz.SetLogger(logger)

	cfg, err := loadConfig(o, os.LookupEnv)
	if err != nil {
		logger.Error("configuration", "err", err)
		return 1
	}
	p, err := pickPlatform(cfg.Platform)
	if err != nil {
		logger.Error("platform", "err", err)
		return 1
	}

	sh := shell.New(p, placeholder.New, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		sh.Quit()
	}()

	code, err := sh.Run()
	if err != nil {
		logger.Error("shell", "err", err)
	}
	return code
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
