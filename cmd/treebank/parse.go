package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

const defaultDataPath = "../ud.conllu"

// Options for the treebank command
type Options struct {
	DataPath    string
	JSON        bool
	Interactive bool
}

func parseArgs(args []string, ui UI) (Options, error) {
	fs := flag.NewFlagSet("treebank", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts Options
	fs.StringVar(&opts.DataPath, "data_path", defaultDataPath, "Path to the CoNLL-U treebank")
	fs.BoolVar(&opts.JSON, "json", false, "Print the relation index as JSON")
	fs.BoolVar(&opts.Interactive, "interactive", false, "Explore the relation index in a prompt")
	fs.BoolVar(&opts.Interactive, "i", false, "alias for -interactive")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Count the dependency relations of every (dependent, governor) pair of a treebank.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if fs.NArg() > 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		err := errors.New("treebank accepts no arguments")
		fprintErr(ui.Err, err)
		return opts, err
	}

	if opts.JSON && opts.Interactive {
		err := errors.New("--json and --interactive are exclusive")
		fprintErr(ui.Err, err)
		return opts, err
	}

	return opts, nil
}
