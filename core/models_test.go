package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "test content",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "This is a much longer piece of content that should still hash consistently",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestValidIntent(t *testing.T) {
	tests := []struct {
		label Intent
		want  bool
	}{
		{IntentRecommendation, true},
		{IntentRetrieveDocs, true},
		{IntentSearchNews, true},
		{IntentInvalidQuestion, true},
		{Intent("compare_price"), false},
		{Intent(""), false},
		{Intent("RETRIEVE_DOCS"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			if got := ValidIntent(tt.label); got != tt.want {
				t.Errorf("ValidIntent(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestCriteria_Empty(t *testing.T) {
	if !(Criteria{}).Empty() {
		t.Error("zero Criteria should be empty")
	}

	populated := []Criteria{
		{BudgetMax: 30000},
		{Purposes: []string{"family"}},
		{Priorities: []string{"safety"}},
		{BrandPreference: "Japanese"},
		{Passengers: 7},
	}
	for i, c := range populated {
		if c.Empty() {
			t.Errorf("criteria %d should not be empty", i)
		}
	}
}
