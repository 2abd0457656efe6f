// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/vfshell/internal/archive"
	"github.com/aibor/vfshell/internal/audit"
	"github.com/aibor/vfshell/internal/config"
	"github.com/aibor/vfshell/internal/shell"
	"github.com/aibor/vfshell/internal/vfs"
)

const localConfigFile = ".vfsh-args"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func parseFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(cfg.Stderr)

	err = flags.ParseArgs(args)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

// loadConfig reads the config file, if given, and applies the command line
// values on top.
func loadConfig(flags *flags) (config.Config, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.Override(flags.config)

	return cfg, nil
}

func printParameters(writer io.Writer, cfg config.Config) {
	fmt.Fprintln(writer, "Startup parameters:")

	for _, field := range cfg.Fields() {
		value := field[1]
		if value == "" {
			value = "-"
		}

		fmt.Fprintf(writer, "  %-16s %s\n", field[0]+":", value)
	}
}

// loadTree loads the VFS archive. Load errors are reported and result in an
// empty tree, so the session can still be used.
func loadTree(ctx context.Context, path string, writer io.Writer) *vfs.Tree {
	if path == "" {
		return vfs.NewTree()
	}

	fmt.Fprintf(writer, "Loading VFS from %s\n", path)

	tree, err := archive.Load(ctx, path)
	if err != nil {
		slog.Error("Failed to load VFS, continuing with empty root",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return vfs.NewTree()
	}

	stats := tree.Stats()
	fmt.Fprintf(writer, "VFS loaded: %d directories, %d files\n",
		stats.Directories, stats.Files)

	return tree
}

func closeAudit(logger *audit.Logger) {
	err := logger.Close()
	if err != nil {
		slog.Error("Failed to close audit log", slog.Any("error", err))
	}
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	conf, err := loadConfig(flags)
	if err != nil {
		return err
	}

	printParameters(cfg.Stdout, conf)

	auditLog, err := audit.Open(conf.LogPath)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer closeAudit(auditLog)

	slog.Debug("Audit session", slog.String("session", auditLog.Session()))

	session := vfs.NewSession(loadTree(ctx, conf.VFSPath, cfg.Stdout))

	sh := shell.New(session, shell.Options{
		Name:        conf.Name,
		Stdout:      cfg.Stdout,
		Stderr:      cfg.Stderr,
		Audit:       auditLog,
		Color:       !conf.NoColor && isTerminal(cfg.Stdout),
		Interactive: isTerminal(cfg.Stdin),
	})

	if conf.StartupScript != "" {
		fmt.Fprintf(cfg.Stdout, "Running startup script %s\n", conf.StartupScript)

		err := sh.RunScript(ctx, conf.StartupScript)
		if err != nil {
			slog.Error("Startup script failed", slog.Any("error", err))
		}
	}

	if sh.Exited() {
		return nil
	}

	err = sh.Run(ctx, cfg.Stdin)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	return nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := parseFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = run(ctx, flags, cfg)
	if err != nil {
		slog.Error(err.Error())
		return -1
	}

	return 0
}
