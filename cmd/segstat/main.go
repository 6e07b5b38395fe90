package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segstat/config"
	"github.com/revelaction/segstat/logger"
	"github.com/revelaction/segstat/render"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "segstat: %v\n", err)
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"title":      "title",
	"format":     "format",
	"color":      "color",
	"charts":     "charts",
	"out-dir":    "out_dir",
	"top":        "top_n",
	"bins":       "bins",
	"progress":   "progress",
	"log-level":  "log_level",
	"log-pretty": "log_pretty",
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "segstat",
		Usage:     "descriptive statistics and charts for a text file",
		UsageText: "segstat [options] [file]",
		Version:   BuildTag,
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file (default " + config.DefaultFile + " if present)"},
			&cli.StringFlag{Name: "title", Usage: "Title used in the charts"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Report format: text, table or json"},
			&cli.BoolFlag{Name: "color", Usage: "Color the report labels (text format)"},
			&cli.BoolFlag{Name: "charts", Value: true, Usage: "Render the PNG charts"},
			&cli.StringFlag{Name: "out-dir", Aliases: []string{"o"}, Usage: "Directory for the charts"},
			&cli.IntFlag{Name: "top", Usage: "Number of words in the frequency chart"},
			&cli.IntFlag{Name: "bins", Usage: "Number of bins of the sentence length histogram"},
			&cli.BoolFlag{Name: "progress", Usage: "Show a progress bar on stderr"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, error or disabled"},
			&cli.BoolFlag{Name: "log-pretty", Value: true, Usage: "Human readable logs"},
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() > 1 {
				return fmt.Errorf("accepts at most one file, got %d", cCtx.NArg())
			}

			flags := map[string]any{}
			for name, key := range flagKeys {
				if cCtx.IsSet(name) {
					flags[key] = cCtx.Value(name)
				}
			}

			if cCtx.NArg() == 1 {
				flags["input"] = cCtx.Args().First()
			}

			cfg, err := config.Load(cCtx.String("config"), flags)
			if err != nil {
				return err
			}

			log := logger.New(logger.Config{
				Level:  cfg.LogLevel,
				Pretty: cfg.LogPretty,
				Output: ui.Err,
			})

			return statCommand(cfg, ui, log)
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(cCtx *cli.Context) error {
					return versionCommand(ui)
				},
			},
			{
				Name:  "formats",
				Usage: "List the report formats",
				Action: func(cCtx *cli.Context) error {
					for _, f := range render.SupportedFormats() {
						fmt.Fprintln(ui.Out, f)
					}
					return nil
				},
			},
		},
	}
}
