package httparse

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
)

// Errors returned by NewKeywords.
var (
	ErrNoKeywords       = errors.New("no keywords")
	ErrEmptyKeyword     = errors.New("empty keyword")
	ErrDuplicateKeyword = errors.New("duplicate keyword")
)

// Keywords recognizes a fixed set of words, such as request methods, at the
// start of a buffer. Matching uses an Aho-Corasick automaton, so the cost
// does not grow with the number of words.
//
// A Keywords value is immutable and safe for concurrent use.
type Keywords struct {
	words  []string
	index  map[string]int
	maxLen int
	auto   *ahocorasick.Automaton
}

// NewKeywords builds a matcher for words. The index of a word in words is
// the id Match reports for it.
func NewKeywords(words ...string) (*Keywords, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("httparse: %w", ErrNoKeywords)
	}

	k := &Keywords{
		words: append([]string(nil), words...),
		index: make(map[string]int, len(words)),
	}
	builder := ahocorasick.NewBuilder()
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("httparse: keyword %d: %w", i, ErrEmptyKeyword)
		}
		if _, dup := k.index[w]; dup {
			return nil, fmt.Errorf("httparse: keyword %q: %w", w, ErrDuplicateKeyword)
		}
		k.index[w] = i
		k.maxLen = max(k.maxLen, len(w))
		builder.AddPattern([]byte(w))
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("httparse: build keyword automaton: %w", err)
	}
	k.auto = auto
	return k, nil
}

// Len returns the number of keywords.
func (k *Keywords) Len() int {
	return len(k.words)
}

// Word returns keyword id.
func (k *Keywords) Word(id int) string {
	return k.words[id]
}

// Match reports the keyword that buf starts with: its id and length.
// ok is false when no keyword is a prefix of buf. When several keywords are
// prefixes of buf, the longest wins, so "GETX" beats "GET" on "GETX /".
//
// Only the first maxLen bytes are searched, so the cost is bounded by the
// longest keyword, not by len(buf).
func (k *Keywords) Match(buf []byte) (id, n int, ok bool) {
	if len(buf) > k.maxLen {
		buf = buf[:k.maxLen]
	}
	id = -1
	// Overlapping matches come in order of their end offset.
	for _, m := range k.auto.FindAllOverlapping(buf) {
		if m.Start == 0 {
			id, n = m.PatternID, m.End
		}
	}
	if id < 0 {
		return -1, 0, false
	}
	return id, n, true
}
