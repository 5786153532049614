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


// Package search provides persona-aware hybrid retrieval over the tool catalog.
//
// The Ranker type implements a multi-stage retrieval algorithm:
//   - Structural filtering by category and pricing constraints
//   - Exact nearest-neighbor search over a vector index scoped to the
//     filtered candidates
//   - Distance cutoff separating strong matches from weak ones
//   - Persona-affinity re-ranking of the survivors
//
// The index is rebuilt per request from the filtered subset, so structural
// filters are strictly honored and never bypassed by global top-k search.
package search
