package match

import "testing"

func testEngine() (*Engine, *KeywordExtractor) {
	ex := NewKeywordExtractor(dictTokenizer{words: testLexicon})
	return NewEngine(ex, DefaultThreshold), ex
}

func TestAnswerRejectsShortQuery(t *testing.T) {
	engine, ex := testEngine()
	bank := NewBank([]Entry{{Question: "什么是Python?", Answer: "一种编程语言"}}, ex)
	if res := engine.Answer("", bank); res.Found {
		t.Fatalf("empty query must be NotFound")
	}
	if res := engine.Answer("ab", bank); res.Found {
		t.Fatalf("two-rune query must be NotFound")
	}
}

func TestAnswerRejectsEmptyBank(t *testing.T) {
	engine, ex := testEngine()
	if res := engine.Answer("什么是Python?", NewBank(nil, ex)); res.Found {
		t.Fatalf("empty bank must be NotFound")
	}
	if res := engine.Answer("什么是Python?", nil); res.Found {
		t.Fatalf("nil bank must be NotFound")
	}
}

func TestAnswerBilingualMatch(t *testing.T) {
	engine, ex := testEngine()
	bank := NewBank([]Entry{
		{Question: "什么是Python?", Answer: "一种编程语言"},
		{Question: "Python是什么？", Answer: "一种编程语言"},
	}, ex)
	res := engine.Answer("python是什么", bank)
	if !res.Found {
		t.Fatalf("expected a match")
	}
	if res.Answer != "一种编程语言" {
		t.Fatalf("wrong answer %q", res.Answer)
	}
	if res.Confidence() <= 60 {
		t.Fatalf("confidence %d, want > 60", res.Confidence())
	}
}

func TestAnswerFirstEntryWinsTies(t *testing.T) {
	engine, ex := testEngine()
	// Identical questions score identically; strict > keeps the first.
	bank := NewBank([]Entry{
		{Question: "什么是Go?", Answer: "1"},
		{Question: "什么是Go?", Answer: "2"},
	}, ex)
	res := engine.Answer("什么是Go?", bank)
	if !res.Found || res.Answer != "1" {
		t.Fatalf("expected first entry's answer, got %+v", res)
	}
}

func TestAnswerBelowThresholdNotFound(t *testing.T) {
	engine, ex := testEngine()
	bank := NewBank([]Entry{{Question: "完全无关的冷门历史事件年表", Answer: "x"}}, ex)
	if res := engine.Answer("python是什么", bank); res.Found {
		t.Fatalf("unrelated entry must stay below threshold, got %+v", res)
	}
}

func TestConfidenceClamped(t *testing.T) {
	r := MatchResult{Found: true, Answer: "x", Score: 1.13}
	if r.Confidence() != 100 {
		t.Fatalf("confidence %d, want clamp to 100", r.Confidence())
	}
	nf := MatchResult{}
	if nf.Confidence() != 0 {
		t.Fatalf("NotFound confidence must be 0")
	}
}
