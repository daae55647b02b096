// Package score ranks adjacent bigrams of a POS-tagged corpus by association
// strength.
package score

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/revelaction/collocate/bigram"
	sent "github.com/revelaction/collocate/sentence"
)

const (
	NameFrequency = "frequency"
	NameChiSquare = "chi-square"
	NameTTest     = "t-test"
	DefaultScorer = NameFrequency
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Names returns the supported algorithm names.
func Names() []string {
	return []string{NameFrequency, NameChiSquare, NameTTest}
}

// Score is the association value of a bigram.
type Score interface {
	// Rank is the value used for sorting.
	Rank() float64
	String() string
}

// Table holds one score per distinct bigram.
type Table map[bigram.Key]Score

// Entry is a ranked bigram.
type Entry struct {
	Bigram bigram.Key `json:"bigram"`
	Score  Score      `json:"score"`
}

// Scorer computes a Table from a corpus. progress, if not nil, is called
// after each sentence.
type Scorer interface {
	Name() string
	Score(corpus sent.Corpus, progress func(current, total int)) Table
}

// New returns the scorer named name. A policy without pattern uses
// DefaultPattern.
func New(name string, p Policy) (Scorer, error) {
	if p.Pattern == nil {
		p.Pattern = DefaultPolicy().Pattern
	}

	switch name {
	case NameFrequency:
		return &frequencyScorer{policy: p}, nil
	case NameTTest:
		return &tTestScorer{policy: p}, nil
	case NameChiSquare:
		return &chiSquareScorer{policy: p}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Rank sorts the table by descending score. Equal scores are ordered by
// bigram.
func Rank(t Table) []Entry {
	entries := make([]Entry, 0, len(t))
	for k, s := range t {
		entries = append(entries, Entry{Bigram: k, Score: s})
	}

	sort.Slice(entries, func(i, j int) bool {
		ri, rj := entries[i].Score.Rank(), entries[j].Score.Rank()
		if ri != rj {
			return ri > rj
		}
		return entries[i].Bigram.Less(entries[j].Bigram)
	})

	return entries
}

// Count is a raw co-occurrence frequency.
type Count int

func (c Count) Rank() float64 { return float64(c) }

func (c Count) String() string { return strconv.Itoa(int(c)) }

// TScore is the t statistic of a bigram together with the probability
// estimates it was computed from.
type TScore struct {
	T   float64 `json:"t"`
	P1  float64 `json:"p1"`
	P2  float64 `json:"p2"`
	P12 float64 `json:"p12"`
}

func (s TScore) Rank() float64 { return s.T }

func (s TScore) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", formatFloat(s.T), formatFloat(s.P1), formatFloat(s.P2), formatFloat(s.P12))
}

// ChiSquare is the Pearson chi-square statistic of the bigram 2x2
// contingency table.
type ChiSquare float64

func (c ChiSquare) Rank() float64 { return float64(c) }

func (c ChiSquare) String() string { return formatFloat(float64(c)) }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

type frequencyScorer struct {
	policy Policy
}

func (s *frequencyScorer) Name() string { return NameFrequency }

func (s *frequencyScorer) Score(corpus sent.Corpus, progress func(current, total int)) Table {
	c := count(corpus, s.policy.Match, progress)

	t := make(Table, len(c.joint))
	for k, n := range c.joint {
		t[k] = Count(n)
	}
	return t
}

type tTestScorer struct {
	policy Policy
}

func (s *tTestScorer) Name() string { return NameTTest }

func (s *tTestScorer) Score(corpus sent.Corpus, progress func(current, total int)) Table {
	c := count(corpus, s.policy.Match, progress)

	t := make(Table, len(c.joint))
	for k, n := range c.joint {
		t[k] = tTest(c.first[k.First], c.second[k.Second], n, c.n)
	}
	return t
}

// tTest computes t = (p12 - p1*p2) / sqrt(p12/N). A zero N or joint count
// gives t = 0.
func tTest(c1, c2, c12, n int) TScore {
	if n == 0 {
		return TScore{}
	}

	total := float64(n)
	s := TScore{
		P1:  float64(c1) / total,
		P2:  float64(c2) / total,
		P12: float64(c12) / total,
	}

	if s.P12 == 0 {
		return s
	}

	s.T = (s.P12 - s.P1*s.P2) / math.Sqrt(s.P12/total)
	return s
}

type chiSquareScorer struct {
	policy Policy
}

func (s *chiSquareScorer) Name() string { return NameChiSquare }

func (s *chiSquareScorer) Score(corpus sent.Corpus, progress func(current, total int)) Table {
	c := count(corpus, s.policy.MatchContent, progress)

	t := make(Table, len(c.joint))
	for k, n := range c.joint {
		t[k] = chiSquare(c.first[k.First], c.second[k.Second], n, c.n)
	}
	return t
}

// chiSquare computes the statistic of the table
//
//	        w2    ¬w2
//	w1      a     b
//	¬w1     c     d
//
// as N(ad-bc)² / ((a+b)(c+d)(a+c)(b+d)). A table with an empty row or column
// gives 0.
func chiSquare(c1, c2, c12, n int) ChiSquare {
	a := float64(c12)
	b := float64(c1 - c12)
	c := float64(c2 - c12)
	d := float64(n - c1 - c2 + c12)

	den := (a + b) * (c + d) * (a + c) * (b + d)
	if den == 0 {
		return 0
	}

	diff := a*d - b*c
	return ChiSquare(float64(n) * diff * diff / den)
}
