package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/revelaction/collocate/query"
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

	if err := treebankCommand(opts, ui); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "treebank: %v\n", err)
}

// treebankCommand loads the relation index and prints it.
func treebankCommand(opts Options, ui UI) error {
	hdl := stat.NewHandler()
	l := &treebank.Loader{Stats: hdl}

	idx, err := l.Load(opts.DataPath)
	if err != nil {
		return err
	}

	if opts.JSON {
		return json.NewEncoder(ui.Out).Encode(idx)
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %d\n", stats.NumSentences, stats.TokensPerSentenceMean)
	fmt.Fprintf(ui.Out, "Num bigrams %d\n", len(idx))

	for _, p := range idx.Relations().Pairs() {
		fmt.Fprintf(ui.Out, "%12s %d\n", p.Rel, p.Count)
	}

	if opts.Interactive {
		return query.NewHandler(idx, ui.Out).Run()
	}

	return nil
}
