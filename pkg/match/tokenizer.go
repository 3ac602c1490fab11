package match

import (
	"fmt"

	"github.com/go-ego/gse"
)

// Tokenizer segments CJK text into lexicon words. Implementations may fail
// (missing dictionary files, cgo-backed engines); the keyword extractor
// treats any error as "no CJK tokens" and continues with the other
// extraction steps.
type Tokenizer interface {
	Cut(text string) ([]string, error)
}

// GseTokenizer is the production Tokenizer backed by the gse segmenter and
// its embedded Chinese dictionary.
type GseTokenizer struct {
	seg gse.Segmenter
}

func NewGseTokenizer() (*GseTokenizer, error) {
	t := &GseTokenizer{}
	if err := t.seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("load gse dictionary: %w", err)
	}
	return t, nil
}

func (t *GseTokenizer) Cut(text string) ([]string, error) {
	return t.seg.Cut(text, true), nil
}
