package match

import "testing"

func TestScoreIdenticalStrings(t *testing.T) {
	norm := Normalize("什么是Python编程语言？")
	kws := []string{"python", "编程语言"}
	got := Score(norm, kws, norm, kws).Final()
	if got < 0.9 {
		t.Fatalf("identical strings scored %.3f, want >= 0.9", got)
	}
}

func TestEditSimilarity(t *testing.T) {
	if got := editSimilarity("abc", "abc"); got != 1.0 {
		t.Fatalf("identical edit similarity = %.3f, want 1.0", got)
	}
	if got := editSimilarity("", ""); got != 0 {
		t.Fatalf("empty edit similarity = %.3f, want 0 (defined, not NaN)", got)
	}
	if got := editSimilarity("abc", "abd"); got < 0.66 || got > 0.67 {
		t.Fatalf("one substitution over three runes = %.3f, want 2/3", got)
	}
}

func TestJaccard(t *testing.T) {
	if got := jaccard(nil, []string{"a"}); got != 0 {
		t.Fatalf("empty set jaccard = %.3f, want 0", got)
	}
	if got := jaccard([]string{"a", "b"}, []string{"b", "c", "d"}); got != 0.25 {
		t.Fatalf("jaccard = %.3f, want 0.25", got)
	}
	if got := jaccard([]string{"a"}, []string{"a"}); got != 1.0 {
		t.Fatalf("jaccard = %.3f, want 1.0", got)
	}
}

func TestContainmentLadder(t *testing.T) {
	if got := containment("abc", nil, "xxabcxx"); got != 0.9 {
		t.Fatalf("query-in-entry = %.2f, want 0.9", got)
	}
	if got := containment("xxabcxx", nil, "abc"); got != 0.8 {
		t.Fatalf("entry-in-query = %.2f, want 0.8", got)
	}
	if got := containment("zzz", []string{"abcd"}, "xxabcdxx"); got != 0.6 {
		t.Fatalf("keyword-in-entry = %.2f, want 0.6", got)
	}
	if got := containment("zzz", []string{"ab"}, "xxabxx"); got != 0 {
		t.Fatalf("short keyword must not trigger containment, got %.2f", got)
	}
}

func TestBonuses(t *testing.T) {
	// Shared ASCII word and shared digit token.
	got := bonuses("python 3000", nil, "learn python 3000", nil)
	if got != bonusSharedASCIIWord+bonusSharedDigits {
		t.Fatalf("bonuses = %.3f, want %.3f", got, bonusSharedASCIIWord+bonusSharedDigits)
	}
	// Two shared CJK keywords, each counted once.
	got = bonuses("x", []string{"编程", "语言", "编程"}, "y", []string{"语言", "编程"})
	if got != 2*bonusPerSharedCJK {
		t.Fatalf("CJK bonuses = %.3f, want %.3f", got, 2*bonusPerSharedCJK)
	}
	if got := bonuses("无数字", nil, "也无数字", nil); got != 0 {
		t.Fatalf("expected no bonuses, got %.3f", got)
	}
}

func TestSequenceRatioBounds(t *testing.T) {
	if got := sequenceRatio("abc", "abc"); got != 1.0 {
		t.Fatalf("ratio of identical strings = %.3f", got)
	}
	if got := sequenceRatio("abc", "xyz"); got != 0 {
		t.Fatalf("ratio of disjoint strings = %.3f", got)
	}
}
