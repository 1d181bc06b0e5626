package domain

import (
	"fmt"
	"testing"
)

func makeCandidates(n int) []Candidate {
	candidates := make([]Candidate, n)
	for i := range n {
		candidates[i] = Candidate{
			Title:      fmt.Sprintf("Track %d", i),
			URL:        fmt.Sprintf("https://www.youtube.com/watch?v=video-%d", i),
			SourceName: "youtube",
		}
	}
	return candidates
}

func TestNewSearchSession(t *testing.T) {
	results := makeCandidates(3)
	session := NewSearchSession("queen", results)

	if session == nil {
		t.Fatal("expected session, got nil")
	}
	if session.Query != "queen" {
		t.Errorf("expected query %q, got %q", "queen", session.Query)
	}
	if session.Page() != 0 {
		t.Errorf("expected page 0, got %d", session.Page())
	}
	if session.Len() != 3 {
		t.Errorf("expected 3 results, got %d", session.Len())
	}
}

func TestNewSearchSession_EmptyResults(t *testing.T) {
	if session := NewSearchSession("nothing", nil); session != nil {
		t.Error("expected nil session for empty results")
	}
	if session := NewSearchSession("nothing", []Candidate{}); session != nil {
		t.Error("expected nil session for empty results")
	}
}

func TestNewSearchSession_CopiesResults(t *testing.T) {
	results := makeCandidates(2)
	session := NewSearchSession("queen", results)

	results[0].Title = "mutated"

	if session.Results[0].Title != "Track 0" {
		t.Errorf("expected session results to be isolated from caller, got %q",
			session.Results[0].Title)
	}
}

func TestSearchSession_MaxPage(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		maxPage int
	}{
		{name: "single partial page", count: 3, maxPage: 0},
		{name: "exactly one page", count: 10, maxPage: 0},
		{name: "one over a page", count: 11, maxPage: 1},
		{name: "three pages", count: 23, maxPage: 2},
		{name: "exact multiple", count: 30, maxPage: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewSearchSession("q", makeCandidates(tt.count))
			if got := session.MaxPage(); got != tt.maxPage {
				t.Errorf("expected max page %d, got %d", tt.maxPage, got)
			}
		})
	}
}

func TestSearchSession_AdvancePage_Clamps(t *testing.T) {
	session := NewSearchSession("q", makeCandidates(23))

	// Previous on page 0 is a no-op
	session.AdvancePage(-1)
	if session.Page() != 0 {
		t.Errorf("expected page 0 after prev on first page, got %d", session.Page())
	}

	session.AdvancePage(1)
	if session.Page() != 1 {
		t.Errorf("expected page 1, got %d", session.Page())
	}

	session.AdvancePage(1)
	if session.Page() != 2 {
		t.Errorf("expected page 2, got %d", session.Page())
	}

	// Next on the last page is a no-op
	session.AdvancePage(1)
	if session.Page() != 2 {
		t.Errorf("expected page 2 after next on last page, got %d", session.Page())
	}
}

func TestSearchSession_Pagination_23Results(t *testing.T) {
	session := NewSearchSession("Queen Bohemian Rhapsody", makeCandidates(23))

	// Page 0: items 0-9, next only
	if got := len(session.PageSlice()); got != 10 {
		t.Errorf("expected 10 items on page 0, got %d", got)
	}
	if session.HasPrev() {
		t.Error("expected no previous button on page 0")
	}
	if !session.HasNext() {
		t.Error("expected next button on page 0")
	}

	// Page 1: items 10-19, both buttons
	session.AdvancePage(1)
	if got := len(session.PageSlice()); got != 10 {
		t.Errorf("expected 10 items on page 1, got %d", got)
	}
	if session.PageStart() != 10 {
		t.Errorf("expected page start 10, got %d", session.PageStart())
	}
	if !session.HasPrev() || !session.HasNext() {
		t.Error("expected both navigation directions on page 1")
	}

	// Page 2: items 20-22, previous only
	session.AdvancePage(1)
	if got := len(session.PageSlice()); got != 3 {
		t.Errorf("expected 3 items on page 2, got %d", got)
	}
	if !session.HasPrev() {
		t.Error("expected previous button on page 2")
	}
	if session.HasNext() {
		t.Error("expected no next button on page 2")
	}
}

func TestSearchSession_CandidateAt(t *testing.T) {
	session := NewSearchSession("q", makeCandidates(23))

	// Global index resolves to the same candidate regardless of current page
	want := session.CandidateAt(15)
	if want == nil {
		t.Fatal("expected candidate at index 15")
	}

	session.AdvancePage(1)
	session.AdvancePage(1)
	got := session.CandidateAt(15)
	if got == nil || got.Title != want.Title {
		t.Errorf("expected stable candidate identity across pages, got %+v", got)
	}

	if session.CandidateAt(-1) != nil {
		t.Error("expected nil for negative index")
	}
	if session.CandidateAt(23) != nil {
		t.Error("expected nil for out-of-range index")
	}
}

func TestCandidate_DisplayTitle(t *testing.T) {
	c := Candidate{Title: "Bohemian Rhapsody"}
	if got := c.DisplayTitle(); got != "Bohemian Rhapsody" {
		t.Errorf("expected title, got %q", got)
	}

	c = Candidate{}
	if got := c.DisplayTitle(); got != "Unknown" {
		t.Errorf("expected %q for missing title, got %q", "Unknown", got)
	}
}
