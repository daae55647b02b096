// Package treebank aggregates dependency relations of a CoNLL-U treebank by
// (dependent, governor) word pair.
package treebank

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/revelaction/collocate/bigram"
)

// Relations counts the occurrences of each relation label.
type Relations map[string]int

// RelationCount is a (label, count) pair.
type RelationCount struct {
	Rel   string `json:"rel"`
	Count int    `json:"count"`
}

// Pairs returns the relation counts sorted by count descending, then label.
func (r Relations) Pairs() []RelationCount {
	pairs := make([]RelationCount, 0, len(r))
	for rel, n := range r {
		pairs = append(pairs, RelationCount{Rel: rel, Count: n})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Rel < pairs[j].Rel
	})

	return pairs
}

func (r Relations) Total() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

func (r Relations) String() string {
	items := make([]string, 0, len(r))
	for _, p := range r.Pairs() {
		items = append(items, fmt.Sprintf("('%s', %d)", p.Rel, p.Count))
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// Index maps a (dependent, governor) key to the relations linking them.
type Index map[bigram.Key]Relations

// Link is an index entry.
type Link struct {
	Bigram    bigram.Key `json:"bigram"`
	Relations Relations  `json:"relations"`
}

// Governors returns the links where form is the dependent.
func (idx Index) Governors(form string) []Link {
	return idx.links(func(k bigram.Key) bool { return k.First.Form == form })
}

// Dependents returns the links where form is the governor.
func (idx Index) Dependents(form string) []Link {
	return idx.links(func(k bigram.Key) bool { return k.Second.Form == form })
}

func (idx Index) links(keep func(bigram.Key) bool) []Link {
	var links []Link
	for k, rels := range idx {
		if keep(k) {
			links = append(links, Link{Bigram: k, Relations: rels})
		}
	}

	sort.Slice(links, func(i, j int) bool {
		return links[i].Bigram.Less(links[j].Bigram)
	})

	return links
}

// Forms returns the distinct forms found in either position, sorted.
func (idx Index) Forms() []string {
	seen := map[string]bool{}
	for k := range idx {
		seen[k.First.Form] = true
		seen[k.Second.Form] = true
	}

	forms := make([]string, 0, len(seen))
	for f := range seen {
		forms = append(forms, f)
	}
	sort.Strings(forms)

	return forms
}

// FormCounts returns, per form, the number of bigrams it takes part in as
// dependent plus those as governor.
func (idx Index) FormCounts() map[string]int {
	n := make(map[string]int)
	for k := range idx {
		n[k.First.Form]++
		n[k.Second.Form]++
	}
	return n
}

// Relations returns the totals per relation label across the index.
func (idx Index) Relations() Relations {
	totals := make(Relations)
	for _, rels := range idx {
		for rel, n := range rels {
			totals[rel] += n
		}
	}
	return totals
}

// MarshalJSON encodes the index as an array of links in key order.
func (idx Index) MarshalJSON() ([]byte, error) {
	links := idx.links(func(bigram.Key) bool { return true })
	if links == nil {
		links = []Link{}
	}
	return json.Marshal(links)
}
