package stat

import (
	sent "github.com/revelaction/collocate/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
}

// Get returns a snapshot of the aggregated stats. The mean is 0 when no
// sentence was seen.
func (h *Handler) Get() Stats {
	s := h.stats
	s.TokensPerSentenceDis = make(map[int]int, len(h.stats.TokensPerSentenceDis))
	for n, c := range h.stats.TokensPerSentenceDis {
		s.TokensPerSentenceDis[n] = c
	}

	if s.NumSentences > 0 {
		s.TokensPerSentenceMean = s.NumTokens / s.NumSentences
	}
	return s
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Add records one sentence of numTokens tokens.
func (h *Handler) Add(numTokens int) {
	h.stats.NumSentences++
	h.stats.NumTokens += numTokens
	h.stats.TokensPerSentenceDis[numTokens]++
}

func (h *Handler) Aggregate(corpus sent.Corpus) {
	for _, sentence := range corpus {
		h.Add(len(sentence))
	}
}
