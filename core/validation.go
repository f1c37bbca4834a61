// Copyright 2025 The Carvisor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Source must not be empty
//   - InsertedAt must not be in the future (zero is fine, set by storage)
//
// NOT validated (populated by the ingestion pipeline):
//   - Vector (can be empty until the embedding step runs)
//   - ID (derived from content on insert)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyContent)
	}

	if doc.Source == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptySource)
	}

	if !doc.InsertedAt.IsZero() && !IsValidTimestamp(doc.InsertedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateIntent validates that a label belongs to the closed intent set.
func ValidateIntent(label Intent) error {
	if !ValidIntent(label) {
		return fmt.Errorf("%w: %q", ErrInvalidIntent, label)
	}
	return nil
}

// ValidateCriteria validates extracted criteria.
//
// Only the budget is checked; all other fields are free-form tags that
// the catalog scoring simply ignores when it does not recognize them.
func ValidateCriteria(criteria Criteria) error {
	if criteria.BudgetMax < 0 {
		return ErrNegativeBudget
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
