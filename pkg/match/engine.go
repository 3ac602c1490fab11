package match

import (
	"math"
	"unicode/utf8"
)

// DefaultThreshold is the minimum final score a bank entry must strictly
// exceed to be accepted as an answer.
const DefaultThreshold = 0.6

// Entry is one question/answer pair as imported into the bank.
type Entry struct {
	Question string
	Answer   string
}

// bankEntry caches the derived forms so a query scan does no per-entry
// re-normalization.
type bankEntry struct {
	answer   string
	norm     string
	keywords []string
}

// Bank is an immutable, insertion-ordered snapshot of the question bank.
// Updating the bank means building a new Bank and swapping the pointer; a
// Bank is never mutated after construction and is safe for concurrent
// readers.
type Bank struct {
	entries []bankEntry
}

// NewBank pre-normalizes and pre-extracts keywords for every entry once so
// each query is a single cheap pass over the snapshot.
func NewBank(entries []Entry, extractor *KeywordExtractor) *Bank {
	b := &Bank{entries: make([]bankEntry, 0, len(entries))}
	for _, e := range entries {
		norm := Normalize(e.Question)
		b.entries = append(b.entries, bankEntry{
			answer:   e.Answer,
			norm:     norm,
			keywords: extractor.Extract(norm),
		})
	}
	return b
}

func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// MatchResult is the tagged outcome of one query: Found carries the answer
// and its score, NotFound carries nothing.
type MatchResult struct {
	Found  bool
	Answer string
	Score  float64
}

// Confidence is the score as an integer percentage clamped to [0,100].
func (r MatchResult) Confidence() int {
	if !r.Found {
		return 0
	}
	c := int(math.Round(r.Score * 100))
	if c > 100 {
		c = 100
	}
	if c < 0 {
		c = 0
	}
	return c
}

// Engine matches OCR'd questions against a bank snapshot. It holds no
// mutable state between calls and may be used concurrently as long as the
// bank it reads is not mutated concurrently.
type Engine struct {
	extractor *KeywordExtractor
	threshold float64
}

func NewEngine(extractor *KeywordExtractor, threshold float64) *Engine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Engine{extractor: extractor, threshold: threshold}
}

// Answer normalizes the question once, extracts its keywords once, then
// scores it against every bank entry in insertion order. A candidate is
// accepted only when strictly above both the running best and the
// threshold, so the first entry reaching the maximum score wins ties and a
// sparse bank yields NotFound rather than a low-quality guess.
func (e *Engine) Answer(question string, bank *Bank) MatchResult {
	if utf8.RuneCountInString(question) < 3 || bank.Len() == 0 {
		return MatchResult{}
	}
	queryNorm := Normalize(question)
	if queryNorm == "" {
		return MatchResult{}
	}
	queryKeywords := e.extractor.Extract(queryNorm)

	var best MatchResult
	for i := range bank.entries {
		entry := &bank.entries[i]
		score := Score(queryNorm, queryKeywords, entry.norm, entry.keywords).Final()
		if score > best.Score && score > e.threshold {
			best = MatchResult{Found: true, Answer: entry.answer, Score: score}
		}
	}
	return best
}
