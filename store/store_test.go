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
	"os"
	"path/filepath"
	"testing"

	"github.com/penny-vault/pvcache/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTickerDirIdempotent(t *testing.T) {
	myStore := New(t.TempDir())

	first, err := myStore.EnsureTickerDir("AAPL")
	require.NoError(t, err)

	second, err := myStore.EnsureTickerDir("AAPL")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	info, err := os.Stat(first)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestTickersCreatesMissingBaseDir(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "never-created")
	myStore := New(baseDir)

	tickers, err := myStore.Tickers()
	require.NoError(t, err)
	assert.Empty(t, tickers)

	info, err := os.Stat(baseDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestTickersSkipsStrayFiles(t *testing.T) {
	baseDir := t.TempDir()
	myStore := New(baseDir)

	_, err := myStore.EnsureTickerDir("AAPL")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "notes.txt"), []byte("x"), 0o644))

	tickers, err := myStore.Tickers()
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, tickers)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	myStore := New(t.TempDir())

	saved := []*data.Price{
		{Time: "2024-01-01", Open: 99, Close: 100, High: 101, Low: 98, Volume: 1000000},
		{Time: "2024-01-02", Open: 100, Close: 101, High: 102, Low: 99, Volume: 900000},
	}
	require.NoError(t, myStore.Save("AAPL", data.PricesFile, saved))

	var loaded []*data.Price
	found, err := myStore.Load("AAPL", data.PricesFile, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, loaded)
}

func TestSavePrettyPrints(t *testing.T) {
	myStore := New(t.TempDir())

	require.NoError(t, myStore.Save("AAPL", data.PricesFile, []*data.Price{{Time: "2024-01-01"}}))

	raw, err := os.ReadFile(myStore.FilePath("AAPL", data.PricesFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  ")
}

func TestLoadMissingFile(t *testing.T) {
	myStore := New(t.TempDir())

	var loaded []*data.Price
	found, err := myStore.Load("AAPL", data.PricesFile, &loaded)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, loaded)
}

func TestLoadCorruptFile(t *testing.T) {
	myStore := New(t.TempDir())

	tickerDir, err := myStore.EnsureTickerDir("AAPL")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(tickerDir, data.PricesFile), []byte("{not json"), 0o644))

	var loaded []*data.Price
	_, err = myStore.Load("AAPL", data.PricesFile, &loaded)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptFile)
}

func TestSaveReplacesSnapshot(t *testing.T) {
	myStore := New(t.TempDir())

	require.NoError(t, myStore.Save("AAPL", data.PricesFile, []*data.Price{{Time: "2024-01-01"}}))
	require.NoError(t, myStore.Save("AAPL", data.PricesFile, []*data.Price{{Time: "2024-01-02"}}))

	var loaded []*data.Price
	found, err := myStore.Load("AAPL", data.PricesFile, &loaded)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, loaded, 1)
	assert.Equal(t, "2024-01-02", loaded[0].Time)
}
