// Package report joins ranked bigrams with the dependency relations of the
// validation treebank.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/revelaction/collocate/score"
	"github.com/revelaction/collocate/treebank"
)

const (
	FormatText    = "text"
	FormatJSON    = "json"
	DefaultFormat = FormatText
)

func SupportedFormats() []string {
	return []string{FormatText, FormatJSON}
}

// Row is a reported bigram.
type Row struct {
	score.Entry
	Relations treebank.Relations `json:"relations"`
}

// Renderer writes the selected rows.
type Renderer interface {
	Render(algorithm string, rows []Row) error
}

// Select walks the ranked entries and keeps, in order, the first topK whose
// bigram is in the index. Entries not in the index do not count.
func Select(entries []score.Entry, idx treebank.Index, topK int) []Row {
	rows := []Row{}
	for _, e := range entries {
		if len(rows) >= topK {
			break
		}

		rels, ok := idx[e.Bigram]
		if !ok {
			continue
		}

		rows = append(rows, Row{Entry: e, Relations: rels})
	}

	return rows
}

// TextRenderer writes a header line naming the algorithm followed by one line
// per row.
type TextRenderer struct {
	W io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

func (r *TextRenderer) Render(algorithm string, rows []Row) error {
	bw := bufio.NewWriter(r.W)

	fmt.Fprintf(bw, "The selected algorithm is %s\n\n", algorithm)
	for _, row := range rows {
		fmt.Fprintf(bw, "%s\t\t\t%s\t\t%s\n", row.Bigram, row.Score, row.Relations)
	}

	return bw.Flush()
}

var _ Renderer = (*TextRenderer)(nil)

// Write selects the rows and renders them with the format renderer. It
// returns the number of rows written.
func Write(w io.Writer, format string, entries []score.Entry, idx treebank.Index, topK int, algorithm string) (int, error) {
	var r Renderer
	switch format {
	case FormatText:
		r = NewTextRenderer(w)
	case FormatJSON:
		r = NewJSONRenderer(w)
	default:
		return 0, fmt.Errorf("unknown report format %q", format)
	}

	rows := Select(entries, idx, topK)
	if err := r.Render(algorithm, rows); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// Path returns the report file path for the algorithm in dir.
func Path(dir, algorithm, format string) string {
	ext := ".txt"
	if format == FormatJSON {
		ext = ".json"
	}
	return filepath.Join(dir, algorithm+ext)
}

// WriteFile writes the report to Path(dir, algorithm, format), creating dir
// if needed. It returns the path and the number of rows written.
func WriteFile(dir, format string, entries []score.Entry, idx treebank.Index, topK int, algorithm string) (string, int, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", 0, fmt.Errorf("IO error: %w", err)
		}
	}

	path := Path(dir, algorithm, format)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("IO error: %w", err)
	}

	n, err := Write(f, format, entries, idx, topK, algorithm)
	if err != nil {
		f.Close()
		return "", 0, err
	}

	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("IO error: %w", err)
	}

	return path, n, nil
}
