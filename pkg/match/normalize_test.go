package match

import "testing"

func TestNormalizeIdempotent(t *testing.T) {
	samples := []string{
		"",
		"  Hello   World  ",
		"什么是Python?",
		"1荆下列说法正确的是？A.对 B.错",
		"Mixed 中文 and English @#$ 123",
		"ＴＥＳＴ", // full-width latin is outside the whitelist
	}
	for _, s := range samples {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", s, once, twice)
		}
	}
}

func TestNormalizeFoldsASCIIOnly(t *testing.T) {
	got := Normalize("Python是一种LANGUAGE")
	want := "python是一种language"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNormalizeStripsNoiseKeepsSentencePunctuation(t *testing.T) {
	got := Normalize("什么是TCP？@@ (hello)   world！")
	want := "什么是tcp？ hello world！"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("  a\t\tb\n\nc  ")
	if got != "a b c" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
