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

package importenv

import "dhall-lang.org/go/dhall/internal/debuglog"

// PersistentCache is the black-box, content-addressed store ImportEnv
// may optionally consult. Its on-disk format is an out-of-scope
// collaborator; dhall/diskcache provides one concrete implementation.
// Every error it returns is treated as a miss by Get and swallowed by
// Set: the memory cache alone preserves correctness even if the
// persistent tier is absent or misbehaving.
type PersistentCache interface {
	Get(h Hash) (Typed, bool, error)
	Set(h Hash, t Typed) error
}

// ImportEnv is the memoized, cycle-detecting resolution scaffold: an
// in-memory map keyed by Location, an optional PersistentCache keyed
// by Hash, and a cycle-guard stack of Locations currently being
// resolved.
//
// ImportEnv is not safe for concurrent use by multiple goroutines at
// once — the resolver is responsible for serializing access to it —
// but its PersistentCache may itself be shared by other, unrelated
// sessions, so implementations of that interface must still defend
// against concurrent writers.
type ImportEnv struct {
	mem   map[Location]Typed
	cache PersistentCache

	// seenHashes avoids a redundant persist attempt for a hash already
	// written this session.
	seenHashes map[Hash]struct{}

	stack locationStack
}

// New creates an ImportEnv. cache may be nil to disable the
// persistent tier entirely (every Get then only consults memory).
func New(cache PersistentCache) *ImportEnv {
	return &ImportEnv{
		mem:        map[Location]Typed{},
		cache:      cache,
		seenHashes: map[Hash]struct{}{},
	}
}

// Get first checks the memory cache by location; on a miss, if a hash
// is supplied, it probes the persistent cache by hash. Persistent-cache
// errors are treated as misses and never propagate.
func (e *ImportEnv) Get(loc Location, hash *Hash) (Typed, bool) {
	if t, ok := e.mem[loc]; ok {
		debuglog.Printf("importenv: memory hit for %s", loc)
		return t, true
	}
	if hash != nil && e.cache != nil {
		t, ok, err := e.cache.Get(*hash)
		if err != nil {
			debuglog.Printf("importenv: persistent cache error for %s, treated as miss: %v", *hash, err)
			return nil, false
		}
		if ok {
			debuglog.Printf("importenv: persistent hit for %s", *hash)
		}
		return t, ok
	}
	return nil, false
}

// Set always installs into the memory cache. If both a persistent
// cache and a hash are present, it also attempts to persist; failures
// are swallowed, never surfaced as a TypeError.
func (e *ImportEnv) Set(loc Location, hash *Hash, t Typed) {
	e.mem[loc] = t
	if hash == nil || e.cache == nil {
		return
	}
	if _, seen := e.seenHashes[*hash]; seen {
		return
	}
	if err := e.cache.Set(*hash, t); err != nil {
		debuglog.Printf("importenv: persistent cache write for %s failed, dropped: %v", *hash, err)
		return
	}
	e.seenHashes[*hash] = struct{}{}
}

// WithCycleDetection fails with ImportCycleError if loc is already on
// the stack; otherwise it pushes loc, invokes resolve, and
// unconditionally pops before returning resolve's result — success or
// failure. The pop runs via defer so it executes on every exit path,
// including a panic unwinding through resolve; this is the critical
// contract: the stack depth at entry must equal the depth at exit.
func (e *ImportEnv) WithCycleDetection(loc Location, resolve func(*ImportEnv) (Typed, error)) (Typed, error) {
	if e.stack.contains(loc) {
		return nil, &ImportCycleError{Stack: e.stack.snapshot(), Offender: loc}
	}
	e.stack.push(loc)
	debuglog.Printf("importenv: entering %s (depth %d)", loc, len(e.stack))
	defer func() {
		e.stack.pop()
		debuglog.Printf("importenv: left %s (depth %d)", loc, len(e.stack))
	}()
	return resolve(e)
}

// StackDepth reports the current cycle-guard stack depth. It is zero
// outside any call to WithCycleDetection, and exists mainly so tests
// can assert that invariant directly.
func (e *ImportEnv) StackDepth() int { return len(e.stack) }
