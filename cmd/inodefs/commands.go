package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dargueta/inodefs"
	"github.com/dargueta/inodefs/config"
	"github.com/dargueta/inodefs/filesystem"
	"github.com/dargueta/inodefs/pkg/logging"
	"github.com/dargueta/inodefs/pkg/logging/slogext"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// environment holds what every command needs once the global flags have been
// processed.
type environment struct {
	out     io.Writer
	logOut  io.Writer
	cfg     *config.Config
	heading *color.Color
}

func (env *environment) setUp(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.IsSet("journal-format") {
		cfg.JournalFormat = c.String("journal-format")
	}
	if c.IsSet("no-color") {
		cfg.NoColor = c.Bool("no-color")
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if env.logOut == nil {
		env.logOut = c.App.ErrWriter
	}
	logger, err := logging.New(env.logOut, cfg.LogFormat, level, !cfg.NoColor)
	if err != nil {
		return err
	}

	env.cfg = cfg
	env.heading = color.New(color.FgCyan, color.Bold)
	if cfg.NoColor {
		env.heading.DisableColor()
	}

	ctx := logging.MakeContextWithNewRunID(c.Context)
	c.Context = logging.MakeContextWithLogger(ctx, logger)
	return nil
}

// newFileSystem creates a file system that logs through the command's logger
// and fills it with the sample tree.
func (env *environment) newFileSystem(c *cli.Context) (*filesystem.FileSystem, filesystem.SampleTree) {
	logger := logging.GetLoggerFromContext(c.Context)
	fs := filesystem.New(filesystem.WithLogger(logger))
	tree := filesystem.PopulateSample(fs)

	logger.Info("built sample tree", slog.Int("inodes", fs.Stat().Inodes))
	return fs, tree
}

func (env *environment) printHeading(title string) {
	fmt.Fprintf(env.out, "\n%s\n", env.heading.Sprintf("=== %s ===", title))
}

func (env *environment) printJournal(fs *filesystem.FileSystem) error {
	if env.cfg.JournalFormat == config.JournalFormatCSV {
		return fs.Journal().WriteCSV(env.out)
	}
	return fs.Journal().Print(env.out)
}

func (env *environment) demo(c *cli.Context) error {
	logger := logging.GetLoggerFromContextWithOp(c.Context, "inodefs.demo")
	fs, tree := env.newFileSystem(c)

	env.printHeading("Directory Listing")
	if err := fs.ListDirectoriesAndFiles(env.out); err != nil {
		logger.Error("listing failed", slogext.Err(err))
		return err
	}

	env.printHeading("Read File")
	fmt.Fprintf(env.out, "File Data: %s\n", fs.ReadFile(tree.Doc1))

	env.printHeading("Journal")
	if err := env.printJournal(fs); err != nil {
		logger.Error("printing journal failed", slogext.Err(err))
		return err
	}

	env.printHeading("Undo Operation")
	if undone, ok := fs.Journal().Undo(); ok {
		fmt.Fprintf(env.out, "Undid operation: %s\n", undone)
	} else {
		fmt.Fprintln(env.out, "Nothing to undo")
	}

	env.printHeading("Final Journal")
	return env.printJournal(fs)
}

func (env *environment) journal(c *cli.Context) error {
	fs, _ := env.newFileSystem(c)
	return env.printJournal(fs)
}

func (env *environment) listing(c *cli.Context) error {
	fs, _ := env.newFileSystem(c)
	if c.Bool("csv") {
		return fs.WriteListingCSV(env.out)
	}
	return fs.ListDirectoriesAndFiles(env.out)
}

func (env *environment) stat(c *cli.Context) error {
	fs, _ := env.newFileSystem(c)
	stat := fs.Stat()

	rows := []struct {
		label string
		value any
	}{
		{"Block size", stat.BlockSize},
		{"Inodes", stat.Inodes},
		{"Files", stat.Files},
		{"Directories", stat.Directories},
		{"Blocks", stat.Blocks},
		{"Reachable blocks", stat.ReachableBlocks},
		{"Orphaned blocks", stat.OrphanedBlocks},
		{"Missing blocks", stat.MissingBlocks},
		{"Bytes stored", stat.BytesStored},
		{"Next ID", stat.NextID},
	}
	for _, row := range rows {
		_, err := fmt.Fprintf(env.out, "%-17s %v\n", row.label+":", row.value)
		if err != nil {
			return inodefs.ErrIOFailed.Wrap(err)
		}
	}
	return nil
}

func (env *environment) check(c *cli.Context) error {
	logger := logging.GetLoggerFromContextWithOp(c.Context, "inodefs.check")
	fs, _ := env.newFileSystem(c)

	err := fs.Check()
	if err != nil {
		logger.Warn("consistency check found problems", slogext.Err(err))
		return cli.Exit(err.Error(), 1)
	}
	fmt.Fprintln(env.out, "OK")
	return nil
}
