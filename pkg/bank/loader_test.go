package bank

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadCSVBasic(t *testing.T) {
	in := "什么是Python?,一种编程语言\nPython是什么？,一种编程语言\n"
	entries, err := LoadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Question != "什么是Python?" || entries[0].Answer != "一种编程语言" {
		t.Fatalf("first entry wrong: %+v", entries[0])
	}
}

func TestLoadCSVDeduplicatesKeepingFirst(t *testing.T) {
	in := "q1,first\nq1,second\nq2,other\n"
	entries, err := LoadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after dedup, got %d", len(entries))
	}
	if entries[0].Answer != "first" {
		t.Fatalf("dedup must keep the first occurrence, got %q", entries[0].Answer)
	}
}

func TestLoadCSVSkipsMalformedRows(t *testing.T) {
	in := "only-one-column\nq1,a1\n,blank-question\nq2,\nq3,a3,extra-col\n"
	entries, err := LoadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 usable entries, got %d: %+v", len(entries), entries)
	}
	if entries[1].Question != "q3" {
		t.Fatalf("extra columns should be tolerated, got %+v", entries[1])
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""))
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
}
