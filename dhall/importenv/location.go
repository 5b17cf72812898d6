// Copyright 2026 The Dhall-Go Authors
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

// Package importenv is the memoized, cycle-detecting scaffold the
// (out of scope) resolver wraps recursive import resolution in: an
// import stack (Push on entry, Pop on exit via defer) for cycle
// detection, and an index (a serially-accessed memory map plus an
// optional backing store) for memoization.
package importenv

import digest "github.com/opencontainers/go-digest"

// Location is a canonicalized import location identifier — a URL, a
// filesystem path, or an environment-variable reference. Resolving two
// different source spellings of the same import to the same Location
// is the resolver's job; ImportEnv only ever compares Locations for
// equality.
type Location string

// Hash is a cryptographic digest of a normalized, typed expression,
// used as the persistent cache's content-addressed key. Reusing
// opencontainers/go-digest instead of a bespoke byte array gets
// algorithm-prefixed, string-round-trippable digests ("sha256:...")
// for free.
type Hash = digest.Digest

// Typed is the resolved-and-typechecked result cached against a
// Location/Hash. ImportEnv is deliberately ignorant of its real shape
// so that this package never has to import the typechecker; callers
// type assert it back to whatever they stored.
type Typed = any
