package match

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"github.com/pmezard/go-difflib/difflib"
)

// Weights of the four similarity signals.
const (
	weightText        = 0.4
	weightKeywords    = 0.3
	weightContainment = 0.2
	weightEdit        = 0.1
)

// Additive bonuses applied on top of the weighted sum.
const (
	bonusSharedASCIIWord = 0.15
	bonusSharedDigits    = 0.10
	bonusPerSharedCJK    = 0.05
)

// ScoreBreakdown carries the individual signals behind one (query, entry)
// comparison. Final may exceed 1.0 when bonuses stack.
type ScoreBreakdown struct {
	TextSimilarity float64
	KeywordScore   float64
	Containment    float64
	EditSimilarity float64
	Bonuses        float64
}

func (s ScoreBreakdown) Final() float64 {
	return s.TextSimilarity*weightText +
		s.KeywordScore*weightKeywords +
		s.Containment*weightContainment +
		s.EditSimilarity*weightEdit +
		s.Bonuses
}

// Score compares a normalized query against a normalized bank entry using
// the four weighted signals plus the categorical bonuses.
func Score(queryNorm string, queryKeywords []string, entryNorm string, entryKeywords []string) ScoreBreakdown {
	return ScoreBreakdown{
		TextSimilarity: sequenceRatio(queryNorm, entryNorm),
		KeywordScore:   jaccard(queryKeywords, entryKeywords),
		Containment:    containment(queryNorm, queryKeywords, entryNorm),
		EditSimilarity: editSimilarity(queryNorm, entryNorm),
		Bonuses:        bonuses(queryNorm, queryKeywords, entryNorm, entryKeywords),
	}
}

// sequenceRatio is the ratio-of-matching-blocks sequence similarity over
// runes, in [0,1].
func sequenceRatio(a, b string) float64 {
	return difflib.NewMatcher(runeSlice(a), runeSlice(b)).Ratio()
}

func runeSlice(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// jaccard is |intersection| / |union| of the two keyword sets, 0 when
// either is empty.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	as := toSet(a)
	inter := 0
	union := len(as)
	seen := map[string]struct{}{}
	for _, w := range b {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if inSet(as, w) {
			inter++
		} else {
			union++
		}
	}
	return float64(inter) / float64(union)
}

func containment(queryNorm string, queryKeywords []string, entryNorm string) float64 {
	if queryNorm != "" && entryNorm != "" {
		if strings.Contains(entryNorm, queryNorm) {
			return 0.9
		}
		if strings.Contains(queryNorm, entryNorm) {
			return 0.8
		}
	}
	for _, kw := range queryKeywords {
		if utf8.RuneCountInString(kw) > 2 && strings.Contains(entryNorm, kw) {
			return 0.6
		}
	}
	return 0
}

// editSimilarity is (maxLen - levenshtein) / maxLen over runes, defined as
// 0 (not NaN) when both strings are empty.
func editSimilarity(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 0
	}
	dist := edlib.LevenshteinDistance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}

func bonuses(queryNorm string, queryKeywords []string, entryNorm string, entryKeywords []string) float64 {
	var bonus float64
	if intersects(asciiWordSet(queryNorm), asciiWordSet(entryNorm)) {
		bonus += bonusSharedASCIIWord
	}
	if intersects(digitTokenSet(queryNorm), digitTokenSet(entryNorm)) {
		bonus += bonusSharedDigits
	}
	bonus += bonusPerSharedCJK * float64(sharedCJKKeywords(queryKeywords, entryKeywords))
	return bonus
}

func asciiWordSet(text string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, w := range latinRunRE.FindAllString(text, -1) {
		if len(w) > 1 {
			out[strings.ToLower(w)] = struct{}{}
		}
	}
	return out
}

func digitTokenSet(text string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, d := range digitRunRE.FindAllString(text, -1) {
		out[d] = struct{}{}
	}
	return out
}

// sharedCJKKeywords counts CJK keywords present in both sets, each once.
func sharedCJKKeywords(queryKeywords, entryKeywords []string) int {
	entryCJK := map[string]struct{}{}
	for _, kw := range entryKeywords {
		if cjkOnlyRE.MatchString(kw) {
			entryCJK[kw] = struct{}{}
		}
	}
	counted := map[string]struct{}{}
	for _, kw := range queryKeywords {
		if _, dup := counted[kw]; dup {
			continue
		}
		if inSet(entryCJK, kw) {
			counted[kw] = struct{}{}
		}
	}
	return len(counted)
}

func intersects(a, b map[string]struct{}) bool {
	for w := range a {
		if inSet(b, w) {
			return true
		}
	}
	return false
}
