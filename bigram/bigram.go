// Package bigram holds the ordered token pair shared by the scorer and the
// treebank index.
package bigram

import (
	"fmt"

	sent "github.com/revelaction/collocate/sentence"
)

// Key is an ordered pair of words. (w1, w2) and (w2, w1) are distinct keys.
//
// In the scoring corpus First precedes Second. In the treebank index First is
// the dependent and Second its governor.
type Key struct {
	First  sent.Word `json:"first"`
	Second sent.Word `json:"second"`
}

func New(first, second sent.Word) Key {
	return Key{First: first, Second: second}
}

// Less orders keys lexicographically by first form, first POS, second form
// and second POS.
func (k Key) Less(o Key) bool {
	if k.First.Form != o.First.Form {
		return k.First.Form < o.First.Form
	}
	if k.First.Pos != o.First.Pos {
		return k.First.Pos < o.First.Pos
	}
	if k.Second.Form != o.Second.Form {
		return k.Second.Form < o.Second.Form
	}
	return k.Second.Pos < o.Second.Pos
}

func (k Key) String() string {
	return fmt.Sprintf("(%s, %s)", k.First, k.Second)
}
