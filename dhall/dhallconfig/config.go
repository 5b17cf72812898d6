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

// Package dhallconfig resolves where the persistent import cache
// lives and loads its configuration, the way internal/cueconfig
// resolves $CUE_CONFIG_DIR/$CUE_CACHE_DIR and reads logins.json. The
// typechecker and ImportEnv core take no dependency on this package;
// it only feeds the default PersistentCache implementation
// (dhall/diskcache).
package dhallconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional config.yaml read from the cache directory.
type Config struct {
	CacheDisabled   bool `yaml:"cacheDisabled"`
	MaxCacheEntries int  `yaml:"maxCacheEntries"`
}

// DefaultMaxCacheEntries bounds the persistent cache when config.yaml
// doesn't override it, or sets MaxCacheEntries to zero or less.
const DefaultMaxCacheEntries = 10000

// CacheDir returns the directory the persistent cache is rooted at:
// $DHALL_CACHE_DIR (read through getenv) if set, else
// os.UserCacheDir()/dhall, which consults the process environment
// directly rather than getenv.
func CacheDir(getenv func(string) string) (string, error) {
	if dir := getenv("DHALL_CACHE_DIR"); dir != "" {
		return dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine system cache directory: %w", err)
	}
	return filepath.Join(dir, "dhall"), nil
}

// Load reads config.yaml from cacheDir. A missing file is not an
// error: it yields the zero Config (cache enabled, default entry
// cap).
func Load(cacheDir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(cacheDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading dhall cache config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing dhall cache config: %w", err)
	}
	return cfg, nil
}

// EffectiveMaxEntries applies the DefaultMaxCacheEntries fallback.
func (c Config) EffectiveMaxEntries() int {
	if c.MaxCacheEntries <= 0 {
		return DefaultMaxCacheEntries
	}
	return c.MaxCacheEntries
}
