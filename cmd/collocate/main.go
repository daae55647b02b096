package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/collocate/report"
	"github.com/revelaction/collocate/score"
	sent "github.com/revelaction/collocate/sentence"
	"github.com/revelaction/collocate/stat"
	"github.com/revelaction/collocate/treebank"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	opts, err := parseArgs(os.Args[1:], ui)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := collocateCommand(opts, ui); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "collocate: %v\n", err)
}

// collocateCommand scores the corpus, joins the ranking with the treebank
// relations and writes the report.
func collocateCommand(opts Options, ui UI) error {

	policy, err := opts.Config().Policy()
	if err != nil {
		return err
	}

	// unknown algorithms fail before reading the corpus
	scorer, err := score.New(opts.Algorithm, policy)
	if err != nil {
		return err
	}

	corpus, err := sent.ReadCorpus(opts.CorpusPath)
	if err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(corpus)
	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %d\n", stats.NumSentences, stats.TokensPerSentenceMean)

	var table score.Table
	if opts.NoProgress {
		table = scorer.Score(corpus, nil)
	} else {
		table = scoreWithProgress(scorer, corpus, ui)
	}

	entries := score.Rank(table)
	fmt.Fprintf(ui.Out, "Scored %d bigrams with %s\n", len(entries), scorer.Name())

	idx, err := treebank.Load(opts.ValPath)
	if err != nil {
		return fmt.Errorf("treebank: %w", err)
	}

	path, n, err := report.WriteFile(opts.SaveDir, opts.Format, entries, idx, opts.TopK, scorer.Name())
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	fmt.Fprintf(ui.Out, "✍  %d bigrams written to %s\n", n, path)
	return nil
}

func scoreWithProgress(scorer score.Scorer, corpus sent.Corpus, ui UI) score.Table {
	p := uiprogress.New()
	p.SetOut(ui.Err)

	// Start progress indicator
	p.Start()
	bar := p.AddBar(len(corpus))
	bar.AppendCompleted()
	bar.PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return scorer.Name()
	})

	table := scorer.Score(corpus, func(current, total int) {
		bar.Incr()
	})

	// stop rendering
	p.Stop()

	return table
}
