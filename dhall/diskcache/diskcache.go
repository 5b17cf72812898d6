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

// Package diskcache is one concrete implementation of
// importenv.PersistentCache: a hash-sharded directory tree, grounded
// on mod/modcache's content-addressed module download cache (same
// shard-then-atomic-rename shape, keyed by digest.Digest instead of a
// module version). The on-disk format is not something the typing
// core depends on — this package exists so the module is runnable end
// to end, not because the core depends on its layout.
package diskcache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"dhall-lang.org/go/dhall/importenv"
)

// Codec serializes and deserializes the opaque Typed payload. The
// typechecker's concrete Typed representation is intentionally not
// known to this package (spec: the cache is a "black-box map"), so
// callers supply the codec that understands it.
type Codec interface {
	Encode(importenv.Typed) ([]byte, error)
	Decode([]byte) (importenv.Typed, error)
}

// Cache is a directory-tree-backed importenv.PersistentCache.
type Cache struct {
	dir        string
	codec      Codec
	maxEntries int32
	count      int32 // entries written this process; not persisted across restarts
}

// New roots a Cache at dir, encoding/decoding entries with codec.
// maxEntries <= 0 means unbounded.
func New(dir string, codec Codec, maxEntries int) *Cache {
	return &Cache{dir: dir, codec: codec, maxEntries: int32(maxEntries)}
}

var _ importenv.PersistentCache = (*Cache)(nil)

// Get reads and decodes the entry for h, reporting a miss (never an
// error) when the file is simply absent.
func (c *Cache) Get(h importenv.Hash) (importenv.Typed, bool, error) {
	data, err := os.ReadFile(c.path(h))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("diskcache: reading %s: %w", h, err)
	}
	t, err := c.codec.Decode(data)
	if err != nil {
		return nil, false, fmt.Errorf("diskcache: decoding %s: %w", h, err)
	}
	return t, true, nil
}

// Set encodes and atomically writes the entry for h (write to a
// temporary file in the same shard directory, then rename) to avoid
// ever leaving a half-written cache file at the final path.
func (c *Cache) Set(h importenv.Hash, t importenv.Typed) error {
	if c.maxEntries > 0 && atomic.LoadInt32(&c.count) >= c.maxEntries {
		return fmt.Errorf("diskcache: at capacity (%d entries)", c.maxEntries)
	}
	data, err := c.codec.Encode(t)
	if err != nil {
		return fmt.Errorf("diskcache: encoding %s: %w", h, err)
	}
	path := c.path(h)
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return fmt.Errorf("diskcache: creating shard dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return fmt.Errorf("diskcache: creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("diskcache: writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("diskcache: closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("diskcache: installing entry: %w", err)
	}
	atomic.AddInt32(&c.count, 1)
	return nil
}

// path shards by algorithm and the first two hex characters of the
// encoded digest, mirroring modcache's two-level sharding so no
// directory accumulates an unbounded number of entries.
func (c *Cache) path(h importenv.Hash) string {
	enc := h.Encoded()
	shard := enc
	if len(shard) > 2 {
		shard = shard[:2]
	}
	return filepath.Join(c.dir, string(h.Algorithm()), shard, enc)
}
