package match

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxQuestions caps one segmentation at a typical on-screen quiz batch.
const maxQuestions = 5

var (
	// A digit glued to a non-digit, non-separator character is an OCR
	// misread of numbering ("1荆" for "1.").
	digitNoiseRE = regexp.MustCompile(`(\d+)[^\d\s.、]`)
	// Numbering prefix: arabic or CJK numeral followed by a separator.
	numberPrefixRE   = regexp.MustCompile(`(?:\d+|[一二三四五六七八九十]+)[.、\s]\s*`)
	questionMarkRE   = regexp.MustCompile(`[?？]`)
	lineBreakSplitRE = regexp.MustCompile(`\r?\n`)
)

// SegmentQuestions splits one OCR text blob into an ordered list of at most
// five question strings. Strategies are tried in order: numbered-prefix
// split after digit-noise repair, question-mark split, line split. Returns
// nil for inputs shorter than 5 runes or entirely whitespace.
func SegmentQuestions(raw string) []string {
	if utf8.RuneCountInString(strings.TrimSpace(raw)) < 5 {
		return nil
	}
	cleaned := digitNoiseRE.ReplaceAllString(raw, "$1. ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	questions := splitNumbered(cleaned)
	if len(questions) == 0 {
		questions = splitQuestionMarks(cleaned)
	}
	if len(questions) == 0 {
		questions = splitLines(raw)
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

// splitNumbered slices the text at every numbering prefix and keeps
// fragments longer than 5 runes. RE2 has no lookahead, so the prefix
// positions delimit the fragments directly.
func splitNumbered(text string) []string {
	locs := numberPrefixRE.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	var out []string
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		frag := strings.TrimSpace(text[loc[0]:end])
		if utf8.RuneCountInString(frag) > 5 {
			out = append(out, frag)
		}
	}
	return out
}

// splitQuestionMarks cuts at each ?/？ keeping the mark on its fragment.
// The trailing remainder gets a mark appended. Yields nothing when the text
// contains no question mark at all, so the line fallback can run.
func splitQuestionMarks(text string) []string {
	locs := questionMarkRE.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	var out []string
	start := 0
	for _, loc := range locs {
		if strings.TrimSpace(text[start:loc[0]]) != "" {
			out = append(out, strings.TrimSpace(text[start:loc[1]]))
		}
		start = loc[1]
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		out = append(out, rest+"？")
	}
	return out
}

func splitLines(text string) []string {
	var out []string
	for _, line := range lineBreakSplitRE.Split(text, -1) {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) > 8 {
			out = append(out, line)
		}
	}
	return out
}
