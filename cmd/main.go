package main

import (
	"LineFinder/internal"
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      internal.AppName,
		Usage:     "Search a literal pattern in stdin or recursively in files, highlighting every hit",
		ArgsUsage: "PATTERN [PATH]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file (log_level, log_file, max_line_length, max_open_dirs, vcs_markers, archives)",
				EnvVars: []string{"LINEFINDER_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "logfile",
				Usage:   "Write logs into file instead of stderr",
				EnvVars: []string{"LINEFINDER_LOGFILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "warn",
				EnvVars: []string{"LINEFINDER_LOG_LEVEL"},
			},
			&cli.IntFlag{
				Name:  "max-line-length",
				Usage: "Longest line read at once, newline included; longer lines are split (0 - unlimited)",
				Value: internal.DefaultMaxLineLength,
			},
			&cli.IntFlag{
				Name:  "max-open-dirs",
				Usage: "Max directories open at once while walking; deeper trees fail",
				Value: internal.DefaultMaxOpenDirs,
			},
			&cli.StringSliceFlag{
				Name:  "vcs-markers",
				Usage: "Path segments never searched (comma separated)",
			},
			&cli.BoolFlag{
				Name:  "archives",
				Usage: "Also search inside archives (.zip,.tar,.gz,.bz2,.xz,.rar,.7z,...)",
			},
		},
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			opts, err := internal.LoadOptions(c.String("config"))
			if err != nil {
				return cli.Exit(err.Error(), internal.ExitUsage)
			}
			if c.IsSet("logfile") {
				opts.LogFile = c.String("logfile")
			}
			if c.IsSet("log-level") {
				opts.LogLevel = c.String("log-level")
			}
			if c.IsSet("max-line-length") {
				opts.MaxLineLength = c.Int("max-line-length")
			}
			if c.IsSet("max-open-dirs") {
				opts.MaxOpenDirs = c.Int("max-open-dirs")
			}
			if c.IsSet("vcs-markers") {
				opts.VCSMarkers = splitList(c.StringSlice("vcs-markers"))
			}
			if c.IsSet("archives") {
				opts.Archives = c.Bool("archives")
			}
			if err := opts.Validate(); err != nil {
				return cli.Exit(err.Error(), internal.ExitUsage)
			}

			internal.InitLogger(opts.LogFile, opts.LogLevel)
			logrus.WithField("args", c.Args().Slice()).Debug("linefinder started")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fd := os.Stdin.Fd()
			code := internal.Run(ctx, opts, internal.Invocation{
				Args:     c.Args().Slice(),
				StdinTTY: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
				Stdin:    os.Stdin,
				Stdout:   os.Stdout,
				Stderr:   os.Stderr,
			})
			if code != internal.ExitMatch {
				return cli.Exit("", code)
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// splitList flattens "a,b" style values into trimmed, non-empty items.
func splitList(s []string) []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			out = append(out, item)
		}
	}
	return out
}
