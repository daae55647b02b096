package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/collocate/report"
	"github.com/revelaction/collocate/score"
	"github.com/revelaction/collocate/treebank"
)

const corpusData = `[
[{"form":"我","upos":"PRON"},{"form":"爱","upos":"VERB"},{"form":"你","upos":"PRON"}],
[{"form":"我","upos":"PRON"},{"form":"爱","upos":"VERB"},{"form":"中国","upos":"PROPN"},{"form":"。","upos":"PUNCT"}]
]`

const treebankData = `# sent_id = 1
# text = 我爱你
1	我	我	PRON	PN	_	2	nsubj	_	_
2	爱	爱	VERB	VV	_	0	root	_	_
3	你	你	PRON	PN	_	2	obj	_	_

`

func testUI() (UI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return UI{Out: &out, Err: &errOut}, &out, &errOut
}

func writeInputs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpus.json")
	val := filepath.Join(dir, "ud.conllu")

	if err := os.WriteFile(corpus, []byte(corpusData), 0644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}
	if err := os.WriteFile(val, []byte(treebankData), 0644); err != nil {
		t.Fatalf("failed to write treebank: %v", err)
	}

	return corpus, val
}

func TestParseArgsDefaults(t *testing.T) {
	ui, _, _ := testUI()
	opts, err := parseArgs([]string{}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Algorithm != score.NameFrequency || opts.TopK != 20 || opts.Format != report.FormatText {
		t.Errorf("unexpected defaults %+v", opts)
	}

	if opts.CorpusPath != "../corpus.json" || opts.ValPath != "../ud.conllu" {
		t.Errorf("unexpected default paths %+v", opts)
	}
}

func TestParseArgs(t *testing.T) {
	ui, _, _ := testUI()
	args := []string{"--corpus_path", "c.json", "--val_path", "v.conllu", "--algorithm", "t-test", "--top_k", "3", "--save_dir", "out", "--format", "json"}
	opts, err := parseArgs(args, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.CorpusPath != "c.json" || opts.ValPath != "v.conllu" || opts.Algorithm != "t-test" || opts.TopK != 3 || opts.SaveDir != "out" || opts.Format != "json" {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestParseArgsBadFormat(t *testing.T) {
	ui, _, errOut := testUI()
	if _, err := parseArgs([]string{"--format", "xml"}, ui); err == nil {
		t.Fatal("expected error for bad format")
	}

	if !strings.Contains(errOut.String(), "allowed values are text, json") {
		t.Errorf("unexpected error output %q", errOut.String())
	}
}

func TestParseArgsHelp(t *testing.T) {
	ui, out, _ := testUI()
	_, err := parseArgs([]string{"--help"}, ui)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}

	if !strings.Contains(out.String(), "-corpus_path") {
		t.Errorf("expected usage in output, got %q", out.String())
	}
}

func TestParseArgsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collocate.yaml")
	data := "algorithm: chi-square\ntop_k: 7\nsave_dir: reports\nstopwords: [了]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	ui, _, _ := testUI()
	opts, err := parseArgs([]string{"--config", path, "--top_k", "2"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Algorithm != score.NameChiSquare || opts.SaveDir != "reports" {
		t.Errorf("config not applied: %+v", opts)
	}

	if opts.TopK != 2 {
		t.Errorf("flag should override config, got top_k %d", opts.TopK)
	}

	if len(opts.Stopwords) != 1 || opts.Stopwords[0] != "了" {
		t.Errorf("unexpected stopwords %v", opts.Stopwords)
	}
}

func TestOptionsConfigPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collocate.yaml")
	data := "script_pattern: '[a-z]'\nstopwords: [the]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	ui, _, _ := testUI()
	opts, err := parseArgs([]string{"--config", path}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := opts.Config().Policy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p.Match("cat") || p.Match("1cat") || p.Match("中国") {
		t.Errorf("config pattern not applied")
	}

	if p.MatchContent("the") {
		t.Errorf("config stopwords not applied")
	}
}

func TestCollocateCommandInvalidPattern(t *testing.T) {
	ui, _, _ := testUI()
	opts := Options{Algorithm: score.NameFrequency, ScriptPattern: "["}

	if err := collocateCommand(opts, ui); err == nil {
		t.Fatal("expected error for invalid script pattern")
	}
}

func TestCollocateCommand(t *testing.T) {
	corpus, val := writeInputs(t)
	saveDir := t.TempDir()

	ui, out, _ := testUI()
	opts, err := parseArgs([]string{"--corpus_path", corpus, "--val_path", val, "--save_dir", saveDir, "--no-progress"}, ui)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := collocateCommand(opts, ui); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Num sentences 2") {
		t.Errorf("expected stats in output %q", out.String())
	}

	b, err := os.ReadFile(filepath.Join(saveDir, "frequency.txt"))
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	// the treebank links 你 to 爱, not 爱 to 你, so only (我, 爱) is reported
	e := "The selected algorithm is frequency\n\n" +
		"(('我', 'PRON'), ('爱', 'VERB'))\t\t\t2\t\t[('nsubj', 1)]\n"
	if string(b) != e {
		t.Errorf("unexpected report:\n%s\nexpected:\n%s", b, e)
	}
}

func TestCollocateCommandUnknownAlgorithm(t *testing.T) {
	ui, _, _ := testUI()
	opts := Options{
		CorpusPath:    filepath.Join(t.TempDir(), "missing.json"),
		Algorithm:     "pmi",
		ScriptPattern: score.DefaultPattern,
		Format:        report.FormatText,
	}

	err := collocateCommand(opts, ui)
	if !errors.Is(err, score.ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm before corpus I/O, got %v", err)
	}
}

func TestCollocateCommandBadTreebank(t *testing.T) {
	corpus, _ := writeInputs(t)
	val := filepath.Join(t.TempDir(), "bad.conllu")
	if err := os.WriteFile(val, []byte("1\t我\n"), 0644); err != nil {
		t.Fatalf("failed to write treebank: %v", err)
	}

	ui, _, _ := testUI()
	opts := Options{
		CorpusPath:    corpus,
		ValPath:       val,
		Algorithm:     score.NameTTest,
		ScriptPattern: score.DefaultPattern,
		Format:        report.FormatText,
		SaveDir:       t.TempDir(),
		NoProgress:    true,
	}

	err := collocateCommand(opts, ui)

	var pe *treebank.ParseError
	if !errors.As(err, &pe) || pe.Line != 1 {
		t.Fatalf("expected ParseError at line 1, got %v", err)
	}
}
