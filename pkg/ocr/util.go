package ocr

import "strings"

// snippet returns a shortened version of text for logging.
func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// collapseText collapses space/tab runs within each line but keeps line
// breaks, which the question segmenter uses as a split fallback.
func collapseText(t string) string {
	lines := strings.Split(strings.ReplaceAll(t, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// Frequent Tesseract misreads seen on quiz screenshots.
var misreads = map[string]string{
	"wikere":  "where",
	"wbat":    "what",
	"Cirimal": "China",
	"meme":    "name",
}

// fixCommonMisreads applies the static correction table.
func fixCommonMisreads(t string) string {
	for wrong, right := range misreads {
		t = strings.ReplaceAll(t, wrong, right)
	}
	return t
}
