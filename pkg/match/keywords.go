package match

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// maxKeywords caps the extracted keyword set per string.
const maxKeywords = 20

var (
	latinRunRE = regexp.MustCompile(`[a-zA-Z]+`)
	digitRunRE = regexp.MustCompile(`\d+`)
	capWordRE  = regexp.MustCompile(`[A-Z][a-z]+`)
	acronymRE  = regexp.MustCompile(`[A-Z]{2,}`)
	cjkOnlyRE  = regexp.MustCompile(`^[\x{4e00}-\x{9fff}]+$`)
)

// Common CJK function words that carry no matching signal.
var cjkStopwords = toSet([]string{
	"的", "是", "了", "在", "有", "和", "就", "不", "都", "要",
	"可以", "这个", "那个", "什么", "哪里", "怎么", "为什么", "因为",
	"所以", "但是", "然后", "如果", "或者", "而且", "还是", "虽然",
	"无论", "不管", "一些", "许多", "很多", "非常", "特别", "比较", "更加",
})

// Common English function/auxiliary words.
var englishStopwords = toSet([]string{
	"the", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "up", "about", "into", "through",
	"during", "before", "after", "above", "below", "over", "under",
	"is", "are", "was", "were", "be", "been", "being", "have",
	"has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "can", "must", "shall", "this",
	"that", "these", "those", "what", "which", "who", "when",
	"where", "why", "how", "very", "much", "many", "most", "more",
	"some", "any", "all", "each", "every", "both", "either", "neither",
})

// KeywordExtractor derives a bounded, deduplicated set of salient tokens
// from normalized text: CJK words via the pluggable Tokenizer, Latin words
// filtered against a stopword list, digit runs, and capitalized/acronym
// runs as enrichment.
type KeywordExtractor struct {
	tok Tokenizer
}

func NewKeywordExtractor(tok Tokenizer) *KeywordExtractor {
	return &KeywordExtractor{tok: tok}
}

// Extract returns up to 20 keywords ordered by descending token length
// (ties keep first-seen order). A Tokenizer failure degrades to zero CJK
// tokens; the other extraction steps still run.
func (e *KeywordExtractor) Extract(text string) []string {
	if utf8.RuneCountInString(text) < 2 {
		return nil
	}
	var raw []string
	if e.tok != nil {
		if segs, err := e.tok.Cut(text); err == nil {
			for _, w := range segs {
				if utf8.RuneCountInString(w) > 1 && cjkOnlyRE.MatchString(w) && !inSet(cjkStopwords, w) {
					raw = append(raw, w)
				}
			}
		}
	}
	for _, w := range latinRunRE.FindAllString(text, -1) {
		w = strings.ToLower(w)
		if len(w) > 1 && !inSet(englishStopwords, w) {
			raw = append(raw, w)
		}
	}
	raw = append(raw, digitRunRE.FindAllString(text, -1)...)
	for _, w := range capWordRE.FindAllString(text, -1) {
		if len(w) > 1 {
			raw = append(raw, strings.ToLower(w))
		}
	}
	for _, w := range acronymRE.FindAllString(text, -1) {
		raw = append(raw, strings.ToLower(w))
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(raw))
	for _, w := range raw {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}
	sort.SliceStable(uniq, func(i, j int) bool {
		return utf8.RuneCountInString(uniq[i]) > utf8.RuneCountInString(uniq[j])
	})
	if len(uniq) > maxKeywords {
		uniq = uniq[:maxKeywords]
	}
	return uniq
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func inSet(set map[string]struct{}, w string) bool {
	_, ok := set[w]
	return ok
}
