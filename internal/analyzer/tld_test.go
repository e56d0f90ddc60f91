package analyzer

import "testing"

func TestTLDScorer_Bands(t *testing.T) {
	s := NewTLDScorer()

	tests := []struct {
		tld  string
		want int
	}{
		{"tk", tldScoreFree},
		{"ml", tldScoreFree},
		{"xyz", tldScorePaidAbused},
		{"top", tldScorePaidAbused},
		{"ru", tldScoreForeignCC},
		{"com", 0},
		{"org", 0},
		{"gov", 0},
		{"", 0},
		{"co.uk", 0}, // scored by its last label
		{"com.ng", tldScoreForeignCC},
	}

	for _, tt := range tests {
		if got := s.Score(tt.tld); got != tt.want {
			t.Errorf("Score(%q) = %d, want %d", tt.tld, got, tt.want)
		}
	}
}

func TestTLDScorer_IsSuspicious(t *testing.T) {
	s := NewTLDScorer()

	if !s.IsSuspicious("tk") {
		t.Error("Expected .tk to be suspicious")
	}
	if !s.IsSuspicious("xyz") {
		t.Error("Expected .xyz to be suspicious")
	}
	if s.IsSuspicious("com") {
		t.Error(".com should not be suspicious")
	}
	if s.IsSuspicious("ru") {
		t.Error("Country TLDs are elevated, not suspicious")
	}
}

func TestTLDScorer_UnknownTLDIsNeutral(t *testing.T) {
	s := NewTLDScorer()

	if got := s.Score("museum"); got != 0 {
		t.Errorf("Unknown TLD should score 0, got %d", got)
	}
}
