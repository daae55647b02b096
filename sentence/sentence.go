package sentence

import (
	"encoding/json"
	"fmt"
	"os"
)

// Corpus is the scoring input: a sequence of POS-tagged sentences.
type Corpus []Sentence

// Sentence is an ordered sequence of tokens.
type Sentence []Token

// Token represents a word of the sentence, with POS and metadata. Other
// fields of the record are ignored.
type Token struct {
	// The unmodified word
	Form string `json:"form"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// Universal POS tag
	Pos string `json:"upos"`

	// Language specific POS tag
	Tag string `json:"xpos"`
}

// Word returns the (form, POS) pair used as bigram component.
func (t Token) Word() Word {
	return Word{Form: t.Form, Pos: t.Pos}
}

// Word is a surface form together with its POS tag. It is comparable and
// used as a map key.
type Word struct {
	Form string `json:"form"`
	Pos  string `json:"pos"`
}

// Root is the synthetic governor of the top-level tokens of a dependency
// tree.
var Root = Word{Form: "ROOT", Pos: ""}

func (w Word) String() string {
	return fmt.Sprintf("('%s', '%s')", w.Form, w.Pos)
}

// ReadCorpus reads a JSON corpus (an array of sentences, each an array of
// token records) from the given path.
func ReadCorpus(path string) (Corpus, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	var corpus Corpus
	err = json.Unmarshal(f, &corpus)
	if err != nil {
		return nil, fmt.Errorf("JSON decoding error in %s: %w", path, err)
	}

	return corpus, nil
}
