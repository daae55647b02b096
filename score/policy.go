package score

import (
	"fmt"
	"regexp"

	"github.com/revelaction/collocate/bigram"
	sent "github.com/revelaction/collocate/sentence"
)

const (
	// DefaultPattern matches forms starting with a CJK unified ideograph.
	DefaultPattern = `^[\x{4E00}-\x{9FA5}]`

	// minSentenceLen is the exclusive lower bound of eligible sentence
	// lengths.
	minSentenceLen = 2
)

// DefaultStopwords are excluded by the chi-square scorer.
func DefaultStopwords() []string {
	return []string{"的"}
}

// Policy decides which adjacent token pairs are counted.
type Policy struct {
	// Pattern selects the forms of the script of interest.
	Pattern *regexp.Regexp

	// Stopwords are forms never counted by the scorers that exclude them.
	Stopwords map[string]bool
}

// NewPolicy compiles pattern and builds the stopword set. The pattern is
// anchored at the start of the form.
func NewPolicy(pattern string, stopwords []string) (Policy, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid script pattern %q: %w", pattern, err)
	}

	sw := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		sw[w] = true
	}

	return Policy{Pattern: re, Stopwords: sw}, nil
}

func DefaultPolicy() Policy {
	p, _ := NewPolicy(DefaultPattern, DefaultStopwords())
	return p
}

// Match reports whether form belongs to the script of interest.
func (p Policy) Match(form string) bool {
	return p.Pattern.MatchString(form)
}

// MatchContent is Match excluding stopwords.
func (p Policy) MatchContent(form string) bool {
	return p.Match(form) && !p.Stopwords[form]
}

// Walk calls fn for every adjacent pair (prev, cur) of s where both forms
// satisfy keep. Sentences of two tokens or less are ignored. Eligibility is
// evaluated per pair.
func Walk(s sent.Sentence, keep func(string) bool, fn func(bigram.Key)) {
	if len(s) <= minSentenceLen {
		return
	}

	prev := s[0]
	for _, cur := range s[1:] {
		if keep(cur.Form) && keep(prev.Form) {
			fn(bigram.New(prev.Word(), cur.Word()))
		}
		prev = cur
	}
}

// counts holds the marginal and joint bigram counts of a corpus.
type counts struct {
	first  map[sent.Word]int
	second map[sent.Word]int
	joint  map[bigram.Key]int
	n      int
}

func newCounts() *counts {
	return &counts{
		first:  make(map[sent.Word]int),
		second: make(map[sent.Word]int),
		joint:  make(map[bigram.Key]int),
	}
}

func (c *counts) add(k bigram.Key) {
	c.first[k.First]++
	c.second[k.Second]++
	c.joint[k]++
	c.n++
}

// count walks the whole corpus. progress may be nil.
func count(corpus sent.Corpus, keep func(string) bool, progress func(current, total int)) *counts {
	c := newCounts()
	for i, s := range corpus {
		Walk(s, keep, c.add)
		if progress != nil {
			progress(i+1, len(corpus))
		}
	}
	return c
}
