package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/selquery/selq/internal/cli"
	"github.com/selquery/selq/internal/logger"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	app := &urfavecli.Command{
		Name:    "selq",
		Usage:   "SQL SELECT statement inspector and rewriter",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "inspect",
				Usage:     "Inspect SELECT statements in SQL files and save the results",
				ArgsUsage: "[path]",
				Action:    inspectCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "config",
						Usage: "Config file path (default: discover selq.yaml)",
					},
					&urfavecli.StringFlag{
						Name:  "data",
						Usage: "Inspection data output path",
					},
					&urfavecli.IntFlag{
						Name:  "parallel",
						Usage: "Maximum concurrent file inspections (1 = sequential)",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Generate a report from saved inspection data",
				Action: reportCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "config",
						Usage: "Config file path (default: discover selq.yaml)",
					},
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format: json, table, csv, markdown, or html (default: table)",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
					},
					&urfavecli.StringFlag{
						Name:  "data",
						Usage: "Inspection data input path",
					},
					&urfavecli.BoolFlag{
						Name:  "summary",
						Usage: "Print a JSON summary instead of the full report",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:      "rewrite",
				Usage:     "Rewrite a SELECT statement",
				ArgsUsage: "<statement | ->",
				Action:    rewriteCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.IntFlag{
						Name:  "top",
						Usage: "Limit the statement to the first n rows",
					},
					&urfavecli.BoolFlag{
						Name:  "count",
						Usage: "Convert the statement into a row-count query",
					},
					&urfavecli.BoolFlag{
						Name:  "distinct",
						Usage: "Make the projection DISTINCT",
					},
					&urfavecli.StringFlag{
						Name:  "order-by",
						Usage: "Replace or insert the ORDER BY clause",
					},
					&urfavecli.StringSliceFlag{
						Name:  "param",
						Usage: "Substitute an @name parameter (name=value, repeatable)",
					},
				},
			},
			{
				Name:      "watch",
				Usage:     "Inspect SQL files and re-inspect whenever they change",
				ArgsUsage: "[path]",
				Action:    watchCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "config",
						Usage: "Config file path (default: discover selq.yaml)",
					},
					&urfavecli.StringFlag{
						Name:  "data",
						Usage: "Inspection data output path",
					},
					&urfavecli.IntFlag{
						Name:  "parallel",
						Usage: "Maximum concurrent file inspections (1 = sequential)",
					},
					&urfavecli.DurationFlag{
						Name:  "debounce",
						Usage: "Delay before re-inspecting after a change",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:      "init",
				Usage:     "Write a default selq.yaml",
				ArgsUsage: "[dir]",
				Action:    initCommand,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// inspectCommand handles the 'selq inspect' command
func inspectCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := cli.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	cli.ApplyFlagsToConfig(config, "", "", cmd.String("data"),
		cmd.Int("parallel"), 0, cmd.Bool("verbose"))
	logger.SetVerbose(config.Verbose)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Search path is the first non-flag argument, default current directory
	searchPath := cmd.Args().First()
	if searchPath == "" {
		searchPath = "."
	}

	exitCode, err := cli.Run(ctx, config, searchPath)
	if err != nil {
		return err
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}

	return nil
}

// reportCommand handles the 'selq report' command
func reportCommand(_ context.Context, cmd *urfavecli.Command) error {
	config, err := cli.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	cli.ApplyFlagsToConfig(config, cmd.String("format"), cmd.String("output"),
		cmd.String("data"), 0, 0, cmd.Bool("verbose"))
	logger.SetVerbose(config.Verbose)

	if cmd.Bool("summary") {
		return cli.ReportSummary(config)
	}
	return cli.Report(config)
}

// rewriteCommand handles the 'selq rewrite' command
func rewriteCommand(_ context.Context, cmd *urfavecli.Command) error {
	statement := cmd.Args().First()
	if statement == "" {
		return fmt.Errorf("missing statement argument (use - to read stdin)")
	}

	return cli.Rewrite(statement, cli.RewriteOptions{
		Top:      cmd.Int("top"),
		Count:    cmd.Bool("count"),
		Distinct: cmd.Bool("distinct"),
		OrderBy:  cmd.String("order-by"),
		Params:   cmd.StringSlice("param"),
	})
}

// watchCommand handles the 'selq watch' command
func watchCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := cli.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	cli.ApplyFlagsToConfig(config, "", "", cmd.String("data"),
		cmd.Int("parallel"), cmd.Duration("debounce"), cmd.Bool("verbose"))
	logger.SetVerbose(config.Verbose)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	searchPath := cmd.Args().First()
	if searchPath == "" {
		searchPath = "."
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Watch(ctx, config, searchPath)
}

// initCommand handles the 'selq init' command
func initCommand(_ context.Context, cmd *urfavecli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		dir = "."
	}
	return cli.Init(dir)
}
