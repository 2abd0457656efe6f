// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/aibor/vfshell/internal/config"
)

const (
	name = "vfsh"

	usageMessage = `Usage of 'vfsh':
    vfsh [flags...]

Loading a VFS and running a startup script before the interactive session:
	vfsh -vfs-path=./fs.zip -startup-script=./startup.sh

Running commands from a pipe:
	echo "ls /" | vfsh -vfs-path=./fs.tar.gz

All vfsh flags can also be provided via environment variable VFSH_ARGS:
	VFSH_ARGS="-log-path=/tmp/vfsh.log -debug" vfsh

All vfsh flags can also be provided via file ./.vfsh-args, with one
argument per line. Settings can also be given in a YAML file with
-config-file. Flags take priority over the config file.
`
)

type flags struct {
	config     config.Config
	configFile string
	flagSet    *flag.FlagSet

	version bool
	debug   bool
}

func newFlags(output io.Writer) *flags {
	flags := &flags{}

	flags.initFlagset(output)

	return flags
}

// ParseArgs parses the given arguments. There are no positional arguments.
func (f *flags) ParseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	if f.flagSet.NArg() > 0 {
		return f.fail("unexpected positional arguments", nil)
	}

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.StringVar(
		&f.config.VFSPath,
		"vfs-path",
		f.config.VFSPath,
		"archive to load the VFS from (zip, tar, compressed tar, cpio)",
	)

	flagSet.StringVar(
		&f.config.LogPath,
		"log-path",
		f.config.LogPath,
		"file to write the JSON audit log to",
	)

	flagSet.StringVar(
		&f.config.StartupScript,
		"startup-script",
		f.config.StartupScript,
		"script to run before the interactive session",
	)

	flagSet.StringVar(
		&f.config.Name,
		"name",
		f.config.Name,
		"name shown in the prompt (default \"vfs\")",
	)

	flagSet.StringVar(
		&f.configFile,
		"config-file",
		f.configFile,
		"YAML config file",
	)

	flagSet.BoolVar(
		&f.config.NoColor,
		"no-color",
		f.config.NoColor,
		"disable colored output",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
