package query

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/collocate/bigram"
	sent "github.com/revelaction/collocate/sentence"
	"github.com/revelaction/collocate/treebank"
)

const treebankData = `# sent_id = 1
1	我	我	PN	PN	_	2	nsubj	_	_
2	爱	爱	V	VV	_	0	root	_	_
3	你	你	PN	PN	_	2	obj	_	_

`

func newHandler(t *testing.T) *Handler {
	t.Helper()
	idx, err := (&treebank.Loader{}).Read(strings.NewReader(treebankData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewHandler(idx, &bytes.Buffer{})
}

func TestAnswerGovernor(t *testing.T) {
	h := newHandler(t)
	out := h.Answer("爱")

	if !strings.Contains(out, "爱 as dependent (1):") {
		t.Errorf("expected dependent section in %q", out)
	}

	if !strings.Contains(out, "爱 as governor (2):") {
		t.Errorf("expected governor section in %q", out)
	}

	if !strings.Contains(out, "[('obj', 1)]") || !strings.Contains(out, "[('nsubj', 1)]") {
		t.Errorf("expected relations in %q", out)
	}
}

func TestAnswerDependentOnly(t *testing.T) {
	h := newHandler(t)
	out := h.Answer("你")

	if strings.Contains(out, "as governor") {
		t.Errorf("你 governs nothing: %q", out)
	}

	if !strings.Contains(out, "(('你', 'PN'), ('爱', 'V'))") {
		t.Errorf("expected bigram in %q", out)
	}
}

func TestAnswerUnknown(t *testing.T) {
	h := newHandler(t)
	if out := h.Answer("他"); out != "no bigram for \"他\"\n" {
		t.Errorf("unexpected answer %q", out)
	}
}

func TestCompleter(t *testing.T) {
	h := newHandler(t)

	buf := prompt.NewBuffer()
	buf.InsertText("R", false, true)
	s := h.completer(*buf.Document())
	if len(s) != 1 || s[0].Text != "ROOT" {
		t.Errorf("unexpected suggestions %v", s)
	}

	if s := h.completer(*prompt.NewBuffer().Document()); len(s) != 0 {
		t.Errorf("expected no suggestions for empty input, got %v", s)
	}
}

func TestNewHandlerLargeIndex(t *testing.T) {
	idx := make(treebank.Index)
	for i := 0; i < 5000; i++ {
		dep := sent.Word{Form: fmt.Sprintf("d%d", i), Pos: "NOUN"}
		gov := sent.Word{Form: fmt.Sprintf("g%d", i%100), Pos: "VERB"}
		idx[bigram.New(dep, gov)] = treebank.Relations{"obj": 1}
	}

	start := time.Now()
	h := NewHandler(idx, &bytes.Buffer{})
	if d := time.Since(start); d > 2*time.Second {
		t.Errorf("building suggestions took %v", d)
	}

	if len(h.suggestions) != 5100 {
		t.Fatalf("expected 5100 suggestions, got %d", len(h.suggestions))
	}

	for _, s := range h.suggestions {
		if s.Text == "g7" && s.Description != "50 bigrams" {
			t.Errorf("unexpected description for g7: %q", s.Description)
		}
		if s.Text == "d7" && s.Description != "1 bigrams" {
			t.Errorf("unexpected description for d7: %q", s.Description)
		}
	}
}
