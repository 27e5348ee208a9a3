package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout)
	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newApp(out io.Writer) *cli.App {
	env := &environment{out: out}

	return &cli.App{
		Name:  "inodefs",
		Usage: "Exercise an in-memory inode file system",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML configuration file",
				EnvVars: []string{"INODEFS_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "pretty, text or json",
			},
			&cli.StringFlag{
				Name:  "journal-format",
				Usage: "text or csv",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured output",
			},
		},
		Before: env.setUp,
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "Build the sample tree, then list, read, print and undo the journal",
				Action: env.demo,
			},
			{
				Name:   "journal",
				Usage:  "Build the sample tree and print its journal",
				Action: env.journal,
			},
			{
				Name:  "listing",
				Usage: "Build the sample tree and print its directory listing",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "csv", Usage: "print the listing as CSV"},
				},
				Action: env.listing,
			},
			{
				Name:   "stat",
				Usage:  "Build the sample tree and print usage statistics",
				Action: env.stat,
			},
			{
				Name:   "check",
				Usage:  "Build the sample tree and check it for consistency",
				Action: env.check,
			},
		},
	}
}
