package main

import (
	"fmt"
	"os"
	"time"

	"github.com/revelaction/segstat/config"
	"github.com/revelaction/segstat/file"
	"github.com/revelaction/segstat/logger"
	"github.com/revelaction/segstat/parse"
	"github.com/revelaction/segstat/plot"
	"github.com/revelaction/segstat/render"
	"github.com/revelaction/segstat/sentiment"
	"github.com/revelaction/segstat/stat"
	"github.com/revelaction/segstat/stopword"
)

var stages = []string{"load", "aggregate", "charts", "report"}

type pipeline struct {
	log      *logger.Logger
	progress *progress
}

func (p *pipeline) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	p.log.LogStage(name, time.Since(start), err)
	p.progress.Incr()
	return err
}

// statCommand loads the text, computes its Stats, renders the charts and
// prints the report.
func statCommand(cfg *config.Config, ui UI, log *logger.Logger) error {
	r, err := render.New(cfg.Format, ui.Out, cfg.Color)
	if err != nil {
		return err
	}

	pl := &pipeline{
		log:      log.Component("pipeline"),
		progress: newProgress(cfg.Progress, ui.Err, stages),
	}
	defer pl.progress.Stop()

	var text string
	err = pl.stage("load", func() error {
		var err error
		text, err = file.ReadText(cfg.Input)
		return err
	})
	if err != nil {
		return err
	}

	hdl := stat.NewHandler(parse.NewParser(cfg.Title), stopword.English(), sentiment.NewVader())
	err = pl.stage("aggregate", func() error {
		return hdl.Aggregate(text)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	stats := hdl.Get()

	// Chart failures are logged as warnings and do not affect the report.
	_ = pl.stage("charts", func() error {
		if cfg.Charts {
			renderCharts(cfg, stats, log)
		}
		return nil
	})

	return pl.stage("report", func() error {
		return r.Render(stats)
	})
}

func renderCharts(cfg *config.Config, stats stat.Stats, log *logger.Logger) {
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		log.Warn("charts skipped").Err(err).Send()
		return
	}

	c := plot.NewCharts(cfg.OutDir, cfg.Title)
	c.TopN = cfg.TopN
	c.Bins = cfg.Bins

	paths, err := c.Render(stats)
	for _, p := range paths {
		log.Debug("chart written").Str("path", p).Send()
	}

	if err != nil {
		log.Warn("chart rendering failed").Err(err).Send()
	}
}
