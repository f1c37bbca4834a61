package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc: &Document{
				Content: "How to reset password: visit the portal.",
				Source:  "it_helpdesk.txt",
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "empty content",
			doc:     &Document{Source: "faq.txt"},
			wantErr: ErrEmptyContent,
		},
		{
			name:    "empty source",
			doc:     &Document{Content: "some text"},
			wantErr: ErrEmptySource,
		},
		{
			name: "future inserted timestamp",
			doc: &Document{
				Content:    "some text",
				Source:     "faq.txt",
				InsertedAt: time.Now().Add(time.Hour),
			},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateIntent(t *testing.T) {
	if err := ValidateIntent(IntentSearchNews); err != nil {
		t.Errorf("ValidateIntent(search_news) = %v, want nil", err)
	}
	if err := ValidateIntent(Intent("weather")); !errors.Is(err, ErrInvalidIntent) {
		t.Errorf("ValidateIntent(weather) = %v, want ErrInvalidIntent", err)
	}
}

func TestValidateCriteria(t *testing.T) {
	if err := ValidateCriteria(Criteria{BudgetMax: 30000}); err != nil {
		t.Errorf("ValidateCriteria() = %v, want nil", err)
	}
	if err := ValidateCriteria(Criteria{BudgetMax: -1}); !errors.Is(err, ErrNegativeBudget) {
		t.Errorf("ValidateCriteria() = %v, want ErrNegativeBudget", err)
	}
}
