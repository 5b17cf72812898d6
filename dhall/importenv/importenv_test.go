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

import (
	"errors"
	"fmt"
	"testing"

	digest "github.com/opencontainers/go-digest"
	"github.com/go-quicktest/qt"
)

// memCache is a trivial in-memory PersistentCache double, so tests
// don't need dhall/diskcache (which would make this package depend on
// its own consumer).
type memCache struct {
	entries map[Hash]Typed
	setErr  error
	sets    int
}

func newMemCache() *memCache { return &memCache{entries: map[Hash]Typed{}} }

func (c *memCache) Get(h Hash) (Typed, bool, error) {
	t, ok := c.entries[h]
	return t, ok, nil
}

func (c *memCache) Set(h Hash, t Typed) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[h] = t
	return nil
}

func testHash(s string) Hash {
	return digest.FromString(s)
}

func TestGetMemoryHitBeforeHash(t *testing.T) {
	env := New(nil)
	env.Set("./a.dhall", nil, "typed-a")

	got, ok := env.Get("./a.dhall", nil)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, "typed-a"))
}

func TestGetFallsBackToPersistentCache(t *testing.T) {
	cache := newMemCache()
	h := testHash("https://example.com/a.dhall")
	cache.entries[h] = "typed-a"

	env := New(cache)
	got, ok := env.Get("https://example.com/a.dhall", &h)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, "typed-a"))
}

func TestGetTreatsPersistentErrorAsMiss(t *testing.T) {
	cache := &errCache{err: errors.New("disk exploded")}
	h := testHash("x")
	env := New(cache)

	_, ok := env.Get("loc", &h)
	qt.Assert(t, qt.IsFalse(ok))
}

type errCache struct{ err error }

func (c *errCache) Get(Hash) (Typed, bool, error) { return nil, false, c.err }
func (c *errCache) Set(Hash, Typed) error         { return c.err }

func TestSetSkipsRedundantPersist(t *testing.T) {
	cache := newMemCache()
	h := testHash("x")
	env := New(cache)

	env.Set("loc", &h, "v1")
	env.Set("loc", &h, "v1")

	qt.Assert(t, qt.Equals(cache.sets, 1))
}

func TestSetSwallowsPersistentWriteFailure(t *testing.T) {
	cache := &errCache{err: fmt.Errorf("no space left")}
	h := testHash("x")
	env := New(cache)

	env.Set("loc", &h, "v1")

	got, ok := env.Get("loc", &h)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, "v1"))
}

func TestWithCycleDetectionDetectsSelfImport(t *testing.T) {
	env := New(nil)

	var resolveInner func(*ImportEnv) (Typed, error)
	resolveInner = func(e *ImportEnv) (Typed, error) {
		return e.WithCycleDetection("a", resolveInner)
	}

	_, err := env.WithCycleDetection("a", resolveInner)
	qt.Assert(t, qt.IsNotNil(err))

	var cycleErr *ImportCycleError
	qt.Assert(t, qt.IsTrue(errors.As(err, &cycleErr)))
	qt.Assert(t, qt.Equals(cycleErr.Offender, Location("a")))
	qt.Assert(t, qt.Equals(env.StackDepth(), 0))
}

func TestWithCycleDetectionPopsOnError(t *testing.T) {
	env := New(nil)
	_, err := env.WithCycleDetection("a", func(*ImportEnv) (Typed, error) {
		return nil, errors.New("boom")
	})
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(env.StackDepth(), 0))
}

func TestWithCycleDetectionPopsOnSuccess(t *testing.T) {
	env := New(nil)
	got, err := env.WithCycleDetection("a", func(*ImportEnv) (Typed, error) {
		return "ok", nil
	})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "ok"))
	qt.Assert(t, qt.Equals(env.StackDepth(), 0))
}

func TestWithCycleDetectionAllowsDiamondImports(t *testing.T) {
	env := New(nil)
	// a imports b and c, both of which import d: not a cycle.
	resolveD := func(*ImportEnv) (Typed, error) { return "d", nil }
	resolveB := func(e *ImportEnv) (Typed, error) { return e.WithCycleDetection("d", resolveD) }
	resolveC := func(e *ImportEnv) (Typed, error) { return e.WithCycleDetection("d", resolveD) }
	resolveA := func(e *ImportEnv) (Typed, error) {
		if _, err := e.WithCycleDetection("b", resolveB); err != nil {
			return nil, err
		}
		return e.WithCycleDetection("c", resolveC)
	}

	got, err := env.WithCycleDetection("a", resolveA)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "d"))
	qt.Assert(t, qt.Equals(env.StackDepth(), 0))
}
