// Command clamp previews markdown and text files in a terminal UI where
// content longer than a character budget starts collapsed and can be
// expanded in place (Tab or mouse click). Content embedding base64 images
// is always shown in full.
//
// Usage:
//
//	clamp [flags] [file|glob ...]
//
// With no arguments, content is read from stdin.
//
// Flags:
//
//	-max-length int  Character budget before content collapses (overrides config)
//	-config string   Path to TOML config file (default ~/.clamp/config.toml)
//	-debug string    Write a debug log to this file
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/fwojciec/clamp"
	bt "github.com/fwojciec/clamp/bubbletea"
	"github.com/fwojciec/clamp/markdown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "clamp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags.
	var (
		maxLength  = flag.Int("max-length", 0, "character budget before content collapses (overrides config)")
		configPath = flag.String("config", "", "path to TOML config file")
		debugPath  = flag.String("debug", "", "write a debug log to this file")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *maxLength != 0 {
		cfg.MaxLength = *maxLength
	}

	log, closeLog, err := newLogger(*debugPath)
	if err != nil {
		return err
	}
	defer closeLog()

	inputs, err := collectInputs(flag.Args(), os.Stdin)
	if err != nil {
		return err
	}

	theme := cfg.theme()
	styles := bt.NewStyles(theme)

	items := make([]bt.Item, 0, len(inputs))
	for _, in := range inputs {
		node := markdown.Parse(in.source)
		block := bt.NewContentBlock(node, cfg.MaxLength, styles)
		items = append(items, bt.Item{Title: in.name, Block: block})
		log.WithFields(logrus.Fields{
			"input":      in.name,
			"length":     clamp.Length(node),
			"collapsed":  block.Collapsed(),
			"has_image":  clamp.HasBase64Image(node),
			"max_length": cfg.MaxLength,
		}).Debug("loaded input")
	}

	if err := bt.Run(ctx, bt.New(items, theme)); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// newLogger returns a logrus logger writing to path, or a silent logger when
// path is empty. A TUI owns stdout, so logs only ever go to a file.
func newLogger(path string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { _ = f.Close() }, nil
}
