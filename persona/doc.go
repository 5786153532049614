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


// Package persona implements user persona inference and scoring.
//
// A persona is a soft classification of a user into one of a fixed set of
// interest profiles. The package has three layers:
//
//   - Model: the static persona configuration. Each persona owns a set of
//     category labels (many-to-many with other personas) and a natural
//     language description used for semantic comparison.
//   - Classifier: a hybrid two-stage procedure that classifies a free-text
//     query into a persona. A fuzzy lexical match against category labels
//     short-circuits at high confidence; otherwise embedding similarity
//     against persona descriptions decides, with a lower-confidence fuzzy
//     fallback.
//   - Tracker: accumulates weighted persona scores per user from query and
//     click signals, and reports the dominant persona.
//
// Scores are additive and unbounded. Only relative order matters for the
// dominant-persona query, so scores never normalize or decay.
//
// All tie-breaking follows persona declaration order in the Model, so
// results are stable and reproducible across runs.
package persona
