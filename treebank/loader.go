package treebank

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/revelaction/collocate/bigram"
	sent "github.com/revelaction/collocate/sentence"
	"github.com/revelaction/collocate/stat"
)

const (
	NumFields = 10

	// CoNLL-U columns
	idField   = 0
	formField = 1
	posField  = 3
	headField = 6
	depField  = 7

	scannerBufSize = 4 * 1024 * 1024
)

var (
	ErrFieldCount = errors.New("wrong number of fields")
	ErrHead       = errors.New("invalid head id")
	ErrHeadRange  = errors.New("head id out of sentence range")
)

// sentenceMarker matches the comment lines that start a new sentence.
var sentenceMarker = regexp.MustCompile(`^#\s(sent_id|text|newdoc)`)

// ParseError reports a malformed treebank line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type node struct {
	word sent.Word
	head int
	dep  string

	line int
	text string
}

// Loader builds an Index from CoNLL-U input.
type Loader struct {
	// Stats, if not nil, receives the number of tokens of every sentence.
	Stats *stat.Handler
}

// Load reads the treebank file at path.
func Load(path string) (Index, error) {
	l := &Loader{}
	return l.Load(path)
}

func (l *Loader) Load(path string) (Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	idx, err := l.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return idx, nil
}

// Read parses the treebank. A blank line ends a sentence: every token of the
// sentence adds one count of its relation to the (token, governor) key. Head
// 0 is the synthetic ROOT word. A sentence marker comment starts over without
// counting the tokens read so far.
func (l *Loader) Read(r io.Reader) (Index, error) {
	idx := make(Index)
	buf := []node{{word: sent.Root, head: -1}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBufSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// a marker starts a new sentence, discarding unterminated tokens
		if sentenceMarker.MatchString(line) {
			buf = buf[:1]
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			if err := l.flush(idx, buf); err != nil {
				return nil, err
			}
			buf = buf[:1]
			continue
		}

		// other comments
		if strings.HasPrefix(fields[0], "#") {
			continue
		}

		if len(fields) != NumFields {
			return nil, &ParseError{Line: lineNum, Text: line, Err: ErrFieldCount}
		}

		// multiword tokens and empty nodes are not part of the tree
		if strings.ContainsAny(fields[idField], "-.") {
			continue
		}

		head, err := strconv.Atoi(fields[headField])
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: ErrHead}
		}

		buf = append(buf, node{
			word: sent.Word{Form: fields[formField], Pos: fields[posField]},
			head: head,
			dep:  fields[depField],
			line: lineNum,
			text: line,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	if err := l.flush(idx, buf); err != nil {
		return nil, err
	}

	return idx, nil
}

// flush adds the sentence in buf to the index. The whole sentence is
// validated before any count is added.
func (l *Loader) flush(idx Index, buf []node) error {
	if len(buf) < 2 {
		return nil
	}

	for _, n := range buf[1:] {
		if n.head < 0 || n.head >= len(buf) {
			return &ParseError{Line: n.line, Text: n.text, Err: ErrHeadRange}
		}
	}

	for _, n := range buf[1:] {
		key := bigram.New(n.word, buf[n.head].word)
		rels, ok := idx[key]
		if !ok {
			rels = make(Relations)
			idx[key] = rels
		}
		rels[n.dep]++
	}

	if l.Stats != nil {
		l.Stats.Add(len(buf) - 1)
	}

	return nil
}
