// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

var (
	ErrCorruptFile = errors.New("cache file is corrupt")
)

// Store maps ticker symbols to directories under a base directory and
// reads and writes whole-collection JSON snapshots inside them.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (store *Store) BaseDir() string {
	return store.baseDir
}

// EnsureTickerDir creates the directory for ticker if it does not already
// exist and returns its path. Concurrent callers for the same ticker are
// safe; an existing directory is not an error.
func (store *Store) EnsureTickerDir(ticker string) (string, error) {
	tickerDir := filepath.Join(store.baseDir, ticker)
	if err := os.MkdirAll(tickerDir, 0o755); err != nil {
		return "", fmt.Errorf("create ticker directory %s: %w", tickerDir, err)
	}
	return tickerDir, nil
}

// Tickers returns the ticker symbols that have a partition directory on
// disk. A missing base directory is created so a fresh cache starts with
// an empty but usable store.
func (store *Store) Tickers() ([]string, error) {
	entries, err := os.ReadDir(store.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(store.baseDir, 0o755); err != nil {
				return nil, fmt.Errorf("create cache directory %s: %w", store.baseDir, err)
			}
			return nil, nil
		}
		return nil, err
	}

	tickers := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			tickers = append(tickers, entry.Name())
		}
	}

	return tickers, nil
}

// FilePath returns the path of a collection snapshot for ticker. The file
// is not guaranteed to exist.
func (store *Store) FilePath(ticker string, collection string) string {
	return filepath.Join(store.baseDir, ticker, collection)
}

// Save writes doc as the complete snapshot of a ticker's collection,
// replacing any prior snapshot. Snapshots are pretty-printed for human
// readability; any valid JSON parses back identically.
func (store *Store) Save(ticker string, collection string, doc any) error {
	if _, err := store.EnsureTickerDir(ticker); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s for %s: %w", collection, ticker, err)
	}

	fn := store.FilePath(ticker, collection)
	if err := os.WriteFile(fn, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

// Load reads a collection snapshot into out. It returns false when the
// file does not exist (the collection was never written, not an error)
// and ErrCorruptFile when the file exists but cannot be parsed.
func (store *Store) Load(ticker string, collection string, out any) (bool, error) {
	fn := store.FilePath(ticker, collection)

	raw, err := os.ReadFile(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", fn, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: %s: %s", ErrCorruptFile, fn, err)
	}

	return true, nil
}
