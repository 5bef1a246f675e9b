package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/lks/internal/config"
	"github.com/standardbeagle/lks/internal/debug"
	"github.com/standardbeagle/lks/internal/display"
	"github.com/standardbeagle/lks/internal/search"
	"github.com/standardbeagle/lks/internal/version"
)

func main() {
	app := &cli.App{
		Name:                   "lks",
		Usage:                  "Lightning fast keyword search across text files",
		Version:                version.Version,
		ArgsUsage:              "[KEYWORD...]",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Directory to search (prompted for when omitted together with keywords)",
			},
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "Glob pattern selecting files to scan (e.g. '*.txt', '**/*.md')",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Number of parallel workers (0 = CPU count)",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Result aggregation mode: 'lock' or 'channel'",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Exclude files matching glob patterns (e.g. --exclude '**/drafts/**')",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output as JSON",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Write debug logging to stderr",
			},
		},
		Action: runScan,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runScan(c *cli.Context) error {
	if c.Bool("debug") {
		os.Setenv("DEBUG", "1")
		debug.SetDebugOutput(os.Stderr)
	}

	keywords := c.Args().Slice()
	root := c.String("root")

	// Original prompt-driven flow: no keyword arguments means
	// interactive input for both keywords and directory.
	if len(keywords) == 0 {
		var err error
		keywords, err = promptKeywords(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		if root == "" {
			root, err = promptDirectory(os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
		}
	}
	if root == "" {
		root = "."
	}

	cfg, err := loadConfigWithOverrides(c, root)
	if err != nil {
		return err
	}

	set, err := search.NewKeywordSet(keywords)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	searcher := search.New(cfg, set)
	result, report := searcher.SearchDirectory(ctx, cfg.Project.Root)

	formatter := display.Formatter{JSON: c.Bool("json")}
	return formatter.Render(os.Stdout, result, report)
}

// loadConfigWithOverrides loads layered configuration for root and
// applies CLI flag overrides on top.
func loadConfigWithOverrides(c *cli.Context, root string) (*config.Config, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", root, err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path %q: %w", root, err)
	}
	cfg.Project.Root = absRoot

	if pattern := c.String("pattern"); pattern != "" {
		cfg.Scan.Pattern = pattern
	}
	if c.IsSet("workers") {
		cfg.Performance.Workers = c.Int("workers")
	}
	if mode := c.String("mode"); mode != "" {
		cfg.Performance.Aggregator = mode
	}
	if excludeFlags := c.StringSlice("exclude"); len(excludeFlags) > 0 {
		cfg.Exclude = append(cfg.Exclude, excludeFlags...)
	}

	if err := config.NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
