package ocr

import "testing"

func TestCollapseTextKeepsLines(t *testing.T) {
	got := collapseText("1.  第一题   ？\r\n\r\nA.对    B.错\n")
	want := "1. 第一题 ？\nA.对 B.错"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFixCommonMisreads(t *testing.T) {
	got := fixCommonMisreads("wikere is the wbat")
	if got != "where is the what" {
		t.Fatalf("got %q", got)
	}
}

func TestSnippet(t *testing.T) {
	if got := snippet("abcdef", 4); got != "abcd…" {
		t.Fatalf("got %q", got)
	}
	if got := snippet("abc", 4); got != "abc" {
		t.Fatalf("got %q", got)
	}
}
