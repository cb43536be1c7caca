package parser

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/starford/listposts/internal/apperr"
)

func TestSortKey_MatchesBigEndianDigits(t *testing.T) {
	got, err := SortKey("2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := int64(binary.BigEndian.Uint64([]byte("20240115")))
	if got != want {
		t.Errorf("SortKey = %#x, want %#x", got, want)
	}
}

func TestSortKey_Ordering(t *testing.T) {
	mid, _ := SortKey("2024-01-15")
	before, _ := SortKey("2023-12-31")
	after, _ := SortKey("2024-02-01")
	if !(mid > before) {
		t.Errorf("2024-01-15 should sort after 2023-12-31")
	}
	if !(mid < after) {
		t.Errorf("2024-01-15 should sort before 2024-02-01")
	}
}

func TestSortKey_NoCalendarValidation(t *testing.T) {
	k, err := SortKey("2024-13-32")
	if err != nil {
		t.Fatalf("shape-valid dates must not fail: %v", err)
	}
	want := int64(binary.BigEndian.Uint64([]byte("20241332")))
	if k != want {
		t.Errorf("SortKey = %#x, want %#x", k, want)
	}
}

func TestSortKey_WrongWidth(t *testing.T) {
	for _, s := range []string{"", "2024-1-5", "2024-01-155", "20240115"} {
		if _, err := SortKey(s); err == nil {
			t.Errorf("SortKey(%q) should fail", s)
		}
	}
}

func TestParse_DateSetsSortKey(t *testing.T) {
	p, err := Parse("a.md", strings.NewReader("# T\ndate: 2024-01-15\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := SortKey("2024-01-15")
	if p.SortKey != want {
		t.Errorf("SortKey = %#x, want %#x", p.SortKey, want)
	}
}

func TestParse_DateAtEOFWithoutNewline(t *testing.T) {
	p, err := Parse("a.md", strings.NewReader("# T\ndate: 2024-01-15"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.HasDate {
		t.Error("trailing date line should be accepted")
	}
}

func TestParse_MalformedDate(t *testing.T) {
	cases := []string{
		"date: 2024-1-5\n",
		"date: 2024-01-155\n",
		"date: 2024-01-15 \n",
		"date:\n",
		"date: January 5th\n",
	}
	for _, line := range cases {
		_, err := Parse("post.md", strings.NewReader("# T\n"+line))
		if !errors.Is(err, apperr.ErrMalformedDate) {
			t.Errorf("line %q: err = %v, want ErrMalformedDate", line, err)
			continue
		}
		if !strings.Contains(err.Error(), "post.md") {
			t.Errorf("line %q: diagnostic should name the file: %v", line, err)
		}
	}
}
