package match

import (
	"fmt"
	"strings"
	"testing"
)

func TestSegmentNumberedQuestions(t *testing.T) {
	got := SegmentQuestions("1. 下列说法正确的是？A.对 B.错 2. 第二题？A.对")
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "下列说法正确的是") {
		t.Fatalf("first question mangled: %q", got[0])
	}
	if !strings.Contains(got[1], "第二题") {
		t.Fatalf("second question mangled: %q", got[1])
	}
}

func TestSegmentDigitNoiseRepair(t *testing.T) {
	// "1荆" is an OCR misread of "1."; the repair step heals it.
	got := SegmentQuestions("1荆下列说法正确的是？A.对 B.错2、第二题？A.对")
	if len(got) != 2 {
		t.Fatalf("expected 2 questions after noise repair, got %d: %v", len(got), got)
	}
}

func TestSegmentCapsAtFive(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&b, "%d. 这是第几道测试题目呢？ ", i)
	}
	got := SegmentQuestions(b.String())
	if len(got) != maxQuestions {
		t.Fatalf("expected cap of %d, got %d", maxQuestions, len(got))
	}
}

func TestSegmentQuestionMarkFallback(t *testing.T) {
	got := SegmentQuestions("什么是光合作用？为什么天空是蓝色的？")
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d: %v", len(got), got)
	}
	for _, q := range got {
		if !strings.HasSuffix(q, "？") {
			t.Fatalf("mark not re-appended: %q", q)
		}
	}
}

func TestSegmentLineFallback(t *testing.T) {
	got := SegmentQuestions("这是第一行的完整内容没有问号\n短行\n这是另外一行的完整内容也没有")
	if len(got) != 2 {
		t.Fatalf("expected 2 lines (short one dropped), got %d: %v", len(got), got)
	}
}

func TestSegmentRejectsShortOrBlank(t *testing.T) {
	if got := SegmentQuestions("abcd"); got != nil {
		t.Fatalf("short input should yield nothing, got %v", got)
	}
	if got := SegmentQuestions("   \n\t  "); got != nil {
		t.Fatalf("blank input should yield nothing, got %v", got)
	}
}
