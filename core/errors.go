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

import "errors"

// Domain validation errors
var (
	// ErrInvalidToolRecord indicates a ToolRecord failed validation.
	ErrInvalidToolRecord = errors.New("invalid tool record")

	// ErrEmptyToolName indicates the Name field is empty.
	ErrEmptyToolName = errors.New("tool name cannot be empty")

	// ErrEmptyCategory indicates the Category field is empty.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrEmptyPricing indicates the Pricing field is empty.
	ErrEmptyPricing = errors.New("pricing cannot be empty")
)
