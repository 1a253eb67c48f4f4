/*
	Copyright 2026 The ringchart Authors
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/analyzer2004/ringchart/dataset"
	"github.com/hashicorp/golang-lru/simplelru"
)

// Fetcher fetches datasets by name.
type Fetcher interface {
	Fetch(ctx context.Context, name, sheet string) ([]dataset.Row, error)
}

// DirFetcher is a Fetcher loading datasets from files under a root
// directory, caching the most recently used.  Fetched rows are shared and
// must not be modified.
type DirFetcher struct {
	root string
	mu   sync.Mutex
	lru  *simplelru.LRU
}

// NewDirFetcher returns a new DirFetcher reading datasets from root and
// caching up to cap of them.
func NewDirFetcher(root string, cap int) (*DirFetcher, error) {
	lru, err := simplelru.NewLRU(cap, nil /* no onEvict policy */)
	if err != nil {
		return nil, err
	}
	return &DirFetcher{
		root: root,
		lru:  lru,
	}, nil
}

type cacheKey struct {
	name, sheet string
}

// Fetch returns the rows of the dataset file name, relative to the
// receiver's root.  sheet selects the worksheet of spreadsheet datasets.
func (df *DirFetcher) Fetch(ctx context.Context, name, sheet string) ([]dataset.Row, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("dataset '%s' is outside the data root", name)
	}
	key := cacheKey{name, sheet}
	df.mu.Lock()
	rowsIf, ok := df.lru.Get(key)
	df.mu.Unlock()
	if ok {
		rows, ok := rowsIf.([]dataset.Row)
		if !ok {
			return nil, fmt.Errorf("cached dataset '%s' wasn't a row set", name)
		}
		return rows, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := dataset.Load(filepath.Join(df.root, name), sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset '%s': %w", name, err)
	}
	df.mu.Lock()
	df.lru.Add(key, rows)
	df.mu.Unlock()
	return rows, nil
}

// Cached returns the number of cached datasets.
func (df *DirFetcher) Cached() int {
	df.mu.Lock()
	defer df.mu.Unlock()
	return df.lru.Len()
}
