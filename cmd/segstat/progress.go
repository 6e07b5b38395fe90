package main

import (
	"io"

	"github.com/gosuri/uiprogress"
)

// progress shows a bar advancing over the pipeline stages. The zero value
// is disabled.
type progress struct {
	p   *uiprogress.Progress
	bar *uiprogress.Bar
}

func newProgress(enabled bool, w io.Writer, stages []string) *progress {
	if !enabled {
		return &progress{}
	}

	p := uiprogress.New()
	p.SetOut(w)

	bar := p.AddBar(len(stages)).AppendCompleted().PrependElapsed()
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		if i := b.Current(); i < len(stages) {
			return stages[i]
		}
		return "done"
	})

	p.Start()
	return &progress{p: p, bar: bar}
}

func (p *progress) Incr() {
	if p.bar != nil {
		p.bar.Incr()
	}
}

func (p *progress) Stop() {
	if p.p != nil {
		p.p.Stop()
	}
}
