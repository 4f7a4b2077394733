// Package main provides the CLI entry point for codesnap.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/codesnap/pkg/adapters/filesink"
	"github.com/user/codesnap/pkg/adapters/ggrenderer"
	"github.com/user/codesnap/pkg/adapters/logger"
	"github.com/user/codesnap/pkg/adapters/nullsink"
	"github.com/user/codesnap/pkg/adapters/osfilesystem"
	"github.com/user/codesnap/pkg/adapters/sysclipboard"
	"github.com/user/codesnap/pkg/config"
	"github.com/user/codesnap/pkg/orchestrator"
	"github.com/user/codesnap/pkg/ports"
	"github.com/user/codesnap/pkg/stages/card"
	"github.com/user/codesnap/pkg/stages/corners"
	"github.com/user/codesnap/pkg/stages/layout"
	"github.com/user/codesnap/pkg/stages/shadow"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "codesnap",
		Usage:     l10n.T("Render syntax-highlighted code as a PNG image"),
		UsageText: "codesnap [options] < input.json",
		Version:   version,
		Flags:     flags(),
		Action:    run,
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		// Input and output
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: l10n.T("Read the JSON document from a file instead of stdin"), Category: l10n.T("Input and Output")},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output PNG path (overrides output_path)"), Category: l10n.T("Input and Output")},
		&cli.StringFlag{Name: "snapshot-dir", Usage: l10n.T("Directory for timestamped snapshots"), Category: l10n.T("Input and Output")},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML defaults file"), Category: l10n.T("Input and Output")},
		&cli.BoolFlag{Name: "no-clipboard", Usage: l10n.T("Do not copy the image to the clipboard"), Category: l10n.T("Input and Output")},

		// Rendering
		&cli.StringFlag{Name: "font", Usage: l10n.T("TTF or OTF monospace font file"), Category: l10n.T("Rendering")},
		&cli.Float64Flag{Name: "scale", Aliases: []string{"s"}, Usage: l10n.T("Render scale (default: 2)"), Category: l10n.T("Rendering")},
		&cli.BoolFlag{Name: "line-numbers", Aliases: []string{"n"}, Usage: l10n.T("Show line numbers"), Category: l10n.T("Rendering")},
		&cli.IntFlag{Name: "start-line", Usage: l10n.T("First line number"), Category: l10n.T("Rendering")},
		&cli.BoolFlag{Name: "decorations", Usage: l10n.T("Draw span backgrounds, underlines and bold text"), Category: l10n.T("Rendering")},
		&cli.BoolFlag{Name: "no-shadow", Usage: l10n.T("Disable the drop shadow"), Category: l10n.T("Rendering")},
		&cli.IntFlag{Name: "workers", Usage: l10n.T("Number of blur workers (default: number of CPUs)"), Category: l10n.T("Rendering")},

		// Debug and logging
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Save intermediate images"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "warn", Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
	}
}

func run(c *cli.Context) error {
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	fs := osfilesystem.New()
	env := processEnv()

	cfg, err := loadConfig(c, fs, env, log)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := readInput(c, fs)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	doc, cfg, err := config.ParseInput(data, cfg)
	if err != nil {
		return fmt.Errorf("input parse: %w", err)
	}
	applyFlags(c, &cfg)

	renderer, err := newRenderer(fs, cfg.FontPath)
	if err != nil {
		return fmt.Errorf("font load: %w", err)
	}

	outputPath, err := config.ResolveOutputPath(cfg, env)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	var sink ports.DebugSink
	if cfg.Debug {
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	orch := orchestrator.New(
		layout.NewStage(renderer, log),
		card.NewStage(renderer, sink, log),
		corners.NewStage(log),
		shadow.NewStage(sink, log, cfg.Workers),
		renderer,
		fs,
		sysclipboard.New(),
		sink,
		log,
	)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(doc, outputPath))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, result.OutputPath)
	return nil
}

// processEnv captures the environment once for path resolution.
func processEnv() config.Env {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return config.Env{
		LookupEnv: os.LookupEnv,
		Home:      home,
		Now:       time.Now(),
	}
}

// loadConfig reads --config, or the user config file when one exists,
// falling back to built-in defaults.
func loadConfig(c *cli.Context, fs ports.FileSystem, env config.Env, log ports.Logger) (config.Config, error) {
	if path := c.String("config"); path != "" {
		log.Info("Loading config from %s", path)
		return config.LoadFromFile(fs, path)
	}

	path := userConfigPath(env)
	if path == "" {
		return config.Defaults(), nil
	}
	exists, err := fs.Exists(path)
	if err != nil || !exists {
		return config.Defaults(), nil
	}
	log.Info("Loading config from %s", path)
	return config.LoadFromFile(fs, path)
}

func userConfigPath(env config.Env) string {
	base, _ := env.Lookup("XDG_CONFIG_HOME")
	if base == "" {
		if env.Home == "" {
			return ""
		}
		base = filepath.Join(env.Home, ".config")
	}
	return filepath.Join(base, "codesnap", "config.yaml")
}

func readInput(c *cli.Context, fs ports.FileSystem) ([]byte, error) {
	if path := c.String("input"); path != "" && path != "-" {
		return fs.ReadFile(path)
	}
	return io.ReadAll(c.App.Reader)
}

// applyFlags lets explicitly set flags override file and document config.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("snapshot-dir") {
		cfg.SnapshotDir = c.String("snapshot-dir")
	}
	if c.Bool("no-clipboard") {
		cfg.Clipboard = false
	}
	if c.IsSet("font") {
		cfg.FontPath = c.String("font")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Float64("scale")
	}
	if c.IsSet("line-numbers") {
		cfg.LineNumbers = c.Bool("line-numbers")
	}
	if c.IsSet("start-line") {
		cfg.StartLine = c.Int("start-line")
	}
	if c.IsSet("decorations") {
		cfg.Decorations = c.Bool("decorations")
	}
	if c.Bool("no-shadow") {
		cfg.Shadow = false
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
}

func newRenderer(fs ports.FileSystem, fontPath string) (*ggrenderer.Renderer, error) {
	if fontPath == "" {
		return ggrenderer.New(), nil
	}
	data, err := fs.ReadFile(fontPath)
	if err != nil {
		return nil, err
	}
	return ggrenderer.NewWithFont(data)
}
