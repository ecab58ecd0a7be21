// Copyright 2025 Caia Tech
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

package model

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/caiatech/lingua/language"
)

// key identifies one (language, n) probability table.
type key struct {
	lang language.Language
	n    int
}

// Cache is a concurrently readable model store. DetectorBuilder.Build
// creates a new Cache for every Detector it builds, so tables are not
// shared between Detectors. Reads of a present table take only the
// shared read lock, writes (load, unload) take the exclusive lock, and
// concurrent first-access calls for the same key deduplicate into
// exactly one parse via golang.org/x/sync/singleflight.
type Cache struct {
	source Source
	logger *zap.Logger

	mu     sync.RWMutex
	tables map[key]Table

	group singleflight.Group
}

// NewCache builds a Cache backed by source. A nil logger falls back to a
// no-op logger.
func NewCache(source Source, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		source: source,
		logger: logger,
		tables: make(map[key]Table),
	}
}

// Get returns the shared Table for (lang, n), loading it on first access.
// Concurrent Get calls for the same key block on the single in-flight
// load and then all receive the same Table.
func (c *Cache) Get(lang language.Language, n int) (Table, error) {
	c.mu.RLock()
	if t, ok := c.tables[key{lang, n}]; ok {
		c.mu.RUnlock()
		return t, nil
	}
	c.mu.RUnlock()

	groupKey := fmt.Sprintf("%d|%d", lang, n)
	v, err, _ := c.group.Do(groupKey, func() (interface{}, error) {
		// Re-check under the group: another goroutine may have
		// populated the cache while we waited to enter Do.
		c.mu.RLock()
		if t, ok := c.tables[key{lang, n}]; ok {
			c.mu.RUnlock()
			return t, nil
		}
		c.mu.RUnlock()

		r, err := c.source.Open(lang, n)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		t, err := loadTable(r)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.tables[key{lang, n}] = t
		c.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Table), nil
}

// Preload loads all five n-orders (n=1..5) for each of the given
// languages. It is idempotent and safe to call from any goroutine.
// Languages whose model data cannot be loaded are logged as warnings,
// skipped, and reported in the returned map; a missing model only ever
// affects its own language, never the whole preload.
func (c *Cache) Preload(langs []language.Language) map[language.Language]error {
	failed := make(map[language.Language]error)
	for _, lang := range langs {
		for n := 1; n <= 5; n++ {
			if _, err := c.Get(lang, n); err != nil {
				c.logger.Warn("model missing, skipping language",
					zap.String("language", lang.String()),
					zap.Int("n", n),
					zap.Error(err))
				failed[lang] = err
				break
			}
		}
	}
	return failed
}

// Unload drops every cached table. Subsequent Get calls reload from
// source.
func (c *Cache) Unload() {
	c.mu.Lock()
	c.tables = make(map[key]Table)
	c.mu.Unlock()
}
