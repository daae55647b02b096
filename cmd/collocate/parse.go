package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/collocate/config"
	"github.com/revelaction/collocate/report"
	"github.com/revelaction/collocate/score"
)

// Options for the collocate command
type Options struct {
	ConfigPath string
	CorpusPath string
	ValPath    string
	Algorithm  string
	TopK       int
	SaveDir    string
	Format     string
	NoProgress bool

	ScriptPattern string
	Stopwords     []string
}

// Config returns the settings of the options.
func (o Options) Config() config.Config {
	return config.Config{
		CorpusPath:    o.CorpusPath,
		ValPath:       o.ValPath,
		Algorithm:     o.Algorithm,
		TopK:          o.TopK,
		SaveDir:       o.SaveDir,
		ScriptPattern: o.ScriptPattern,
		Stopwords:     o.Stopwords,
	}
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

func parseArgs(args []string, ui UI) (Options, error) {
	fs := flag.NewFlagSet("collocate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	def := config.Default()
	opts := Options{
		ScriptPattern: def.ScriptPattern,
		Stopwords:     def.Stopwords,
	}

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to a YAML, TOML or JSON configuration file")
	fs.StringVar(&opts.CorpusPath, "corpus_path", def.CorpusPath, "Path to the JSON corpus of POS tagged sentences")
	fs.StringVar(&opts.ValPath, "val_path", def.ValPath, "Path to the CoNLL-U validation treebank")
	fs.StringVar(&opts.Algorithm, "algorithm", def.Algorithm, "Scoring algorithm: "+strings.Join(score.Names(), ", "))
	fs.IntVar(&opts.TopK, "top_k", def.TopK, "Number of bigrams found in the treebank to report")
	fs.StringVar(&opts.SaveDir, "save_dir", def.SaveDir, "Directory of the report file")
	fs.BoolVar(&opts.NoProgress, "no-progress", false, "Do not show the progress bar")

	opts.Format = report.DefaultFormat
	formatFlag := &enumFlag{allowed: report.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Report format: text or json")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Rank the bigrams of a corpus and report the dependency relations of the top ones.\n")
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
		err := errors.New("collocate accepts no arguments")
		fprintErr(ui.Err, err)
		return opts, err
	}

	if opts.ConfigPath != "" {
		if err := applyConfig(fs, &opts); err != nil {
			fprintErr(ui.Err, err)
			return opts, err
		}
	}

	if opts.TopK < 0 {
		err := fmt.Errorf("invalid top_k: %d", opts.TopK)
		fprintErr(ui.Err, err)
		return opts, err
	}

	return opts, nil
}

// applyConfig fills the options not given on the command line from the
// configuration file.
func applyConfig(fs *flag.FlagSet, opts *Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if !set["corpus_path"] {
		opts.CorpusPath = cfg.CorpusPath
	}
	if !set["val_path"] {
		opts.ValPath = cfg.ValPath
	}
	if !set["algorithm"] {
		opts.Algorithm = cfg.Algorithm
	}
	if !set["top_k"] {
		opts.TopK = cfg.TopK
	}
	if !set["save_dir"] {
		opts.SaveDir = cfg.SaveDir
	}

	opts.ScriptPattern = cfg.ScriptPattern
	opts.Stopwords = cfg.Stopwords
	return nil
}
