// Copyright 2025 Poiesic Systems
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

import "fmt"

// ValidateToolRecord validates a ToolRecord according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Category must not be empty (exactly one per record)
//   - Pricing must not be empty (exactly one per record)
//
// NOT validated (populated later):
//   - Vector (can be empty until the ingestion pipeline runs)
//   - Summary (catalog rows may legitimately lack one)
func ValidateToolRecord(record *ToolRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidToolRecord)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidToolRecord, ErrEmptyToolName)
	}

	if record.Category == "" {
		return fmt.Errorf("%w: %w", ErrInvalidToolRecord, ErrEmptyCategory)
	}

	if record.Pricing == "" {
		return fmt.Errorf("%w: %w", ErrInvalidToolRecord, ErrEmptyPricing)
	}

	return nil
}
