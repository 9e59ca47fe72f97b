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

// Package cache implements a persistent cache for externally fetched
// market data. Each ticker owns five record collections (prices,
// financial metrics, line items, insider trades, and company news) that
// are held in memory and mirrored to per-ticker JSON snapshots on disk.
// Get calls never touch the network; a miss tells the caller to fetch.
// Set calls merge new records into the cached history without loss or
// duplication and rewrite the collection's snapshot before returning.
package cache

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alphadose/haxmap"
	"github.com/penny-vault/pvcache/data"
	"github.com/penny-vault/pvcache/store"
	"github.com/rs/zerolog/log"
)

// partition holds one ticker's cached collections. A nil record slice
// means the collection has never been stored for this ticker, which is
// distinct from a stored-but-empty collection. The mutex serializes the
// merge-then-persist sequence so concurrent writers for the same ticker
// cannot lose updates; different tickers never contend.
type partition struct {
	mu sync.Mutex

	prices           []*data.Price
	financialMetrics []*data.FinancialMetrics
	lineItems        map[string][]data.LineItem
	insiderTrades    []*data.InsiderTrade
	companyNews      []*data.CompanyNews
}

func newPartition() *partition {
	return &partition{
		lineItems: make(map[string][]data.LineItem),
	}
}

// Cache is the public face of the record cache. Construct one per process
// with New and share it; each instance owns its base directory.
type Cache struct {
	store      *store.Store
	partitions *haxmap.Map[string, *partition]
}

// New creates a cache rooted at baseDir and hydrates it from any
// snapshots already on disk. A corrupt snapshot is logged and skipped so
// one bad file cannot take down the rest of the cache.
func New(baseDir string) (*Cache, error) {
	myCache := &Cache{
		store:      store.New(baseDir),
		partitions: haxmap.New[string, *partition](),
	}

	tickers, err := myCache.store.Tickers()
	if err != nil {
		return nil, fmt.Errorf("scan cache directory: %w", err)
	}

	for _, ticker := range tickers {
		part := newPartition()
		part.prices = loadCollection[[]*data.Price](myCache.store, ticker, data.PricesFile)
		part.financialMetrics = loadCollection[[]*data.FinancialMetrics](myCache.store, ticker, data.FinancialMetricsFile)
		part.insiderTrades = loadCollection[[]*data.InsiderTrade](myCache.store, ticker, data.InsiderTradesFile)
		part.companyNews = loadCollection[[]*data.CompanyNews](myCache.store, ticker, data.CompanyNewsFile)

		if lineItems := loadCollection[map[string][]data.LineItem](myCache.store, ticker, data.LineItemsFile); lineItems != nil {
			part.lineItems = lineItems
		}

		myCache.partitions.Set(ticker, part)
	}

	return myCache, nil
}

// loadCollection reads one snapshot file into a fresh value. Corrupt
// files leave the collection zero-valued rather than aborting the load.
func loadCollection[T any](myStore *store.Store, ticker string, collection string) T {
	var doc T
	if _, err := myStore.Load(ticker, collection, &doc); err != nil {
		log.Error().Err(err).Str("Ticker", ticker).Str("FileName", collection).Msg("could not load cache file")
		var zero T
		return zero
	}
	return doc
}

// BaseDir returns the directory the cache persists to.
func (myCache *Cache) BaseDir() string {
	return myCache.store.BaseDir()
}

// partition returns the partition for ticker, creating it on first write.
func (myCache *Cache) partition(ticker string) *partition {
	part, _ := myCache.partitions.GetOrSet(ticker, newPartition())
	return part
}

// persist writes a collection snapshot to disk. Write failures are logged
// and swallowed: the in-memory state stays authoritative for the rest of
// the process lifetime and the next successful save rewrites the whole
// snapshot.
func (myCache *Cache) persist(ticker string, collection string, doc any) {
	if err := myCache.store.Save(ticker, collection, doc); err != nil {
		log.Error().Err(err).Str("Ticker", ticker).Str("FileName", collection).Msg("could not save cache file")
	}
}

// GetPrices returns the cached price history for ticker. The second
// return value is false when prices have never been stored for the
// ticker; callers must treat the returned slice as read-only.
func (myCache *Cache) GetPrices(ticker string) ([]*data.Price, bool) {
	part, ok := myCache.partitions.Get(ticker)
	if !ok {
		return nil, false
	}

	part.mu.Lock()
	defer part.mu.Unlock()
	return part.prices, part.prices != nil
}

// SetPrices merges records into ticker's cached price history, keyed by
// the price bar's time, and rewrites the prices snapshot on disk.
func (myCache *Cache) SetPrices(ticker string, records []*data.Price) error {
	part := myCache.partition(ticker)
	part.mu.Lock()
	defer part.mu.Unlock()

	merged, err := Merge(part.prices, records)
	if err != nil {
		return fmt.Errorf("set prices for %s: %w", ticker, err)
	}

	part.prices = merged
	myCache.persist(ticker, data.PricesFile, merged)
	return nil
}

// GetFinancialMetrics returns the cached financial metrics for ticker.
func (myCache *Cache) GetFinancialMetrics(ticker string) ([]*data.FinancialMetrics, bool) {
	part, ok := myCache.partitions.Get(ticker)
	if !ok {
		return nil, false
	}

	part.mu.Lock()
	defer part.mu.Unlock()
	return part.financialMetrics, part.financialMetrics != nil
}

// SetFinancialMetrics merges records into ticker's cached metrics, keyed
// by report period, and rewrites the financial metrics snapshot on disk.
func (myCache *Cache) SetFinancialMetrics(ticker string, records []*data.FinancialMetrics) error {
	part := myCache.partition(ticker)
	part.mu.Lock()
	defer part.mu.Unlock()

	merged, err := Merge(part.financialMetrics, records)
	if err != nil {
		return fmt.Errorf("set financial metrics for %s: %w", ticker, err)
	}

	part.financialMetrics = merged
	myCache.persist(ticker, data.FinancialMetricsFile, merged)
	return nil
}

// GetInsiderTrades returns the cached insider trades for ticker.
func (myCache *Cache) GetInsiderTrades(ticker string) ([]*data.InsiderTrade, bool) {
	part, ok := myCache.partitions.Get(ticker)
	if !ok {
		return nil, false
	}

	part.mu.Lock()
	defer part.mu.Unlock()
	return part.insiderTrades, part.insiderTrades != nil
}

// SetInsiderTrades merges records into ticker's cached insider trades,
// keyed by filing date, and rewrites the insider trades snapshot on disk.
func (myCache *Cache) SetInsiderTrades(ticker string, records []*data.InsiderTrade) error {
	part := myCache.partition(ticker)
	part.mu.Lock()
	defer part.mu.Unlock()

	merged, err := Merge(part.insiderTrades, records)
	if err != nil {
		return fmt.Errorf("set insider trades for %s: %w", ticker, err)
	}

	part.insiderTrades = merged
	myCache.persist(ticker, data.InsiderTradesFile, merged)
	return nil
}

// GetCompanyNews returns the cached company news for ticker.
func (myCache *Cache) GetCompanyNews(ticker string) ([]*data.CompanyNews, bool) {
	part, ok := myCache.partitions.Get(ticker)
	if !ok {
		return nil, false
	}

	part.mu.Lock()
	defer part.mu.Unlock()
	return part.companyNews, part.companyNews != nil
}

// SetCompanyNews merges records into ticker's cached news, keyed by
// article date, and rewrites the company news snapshot on disk.
func (myCache *Cache) SetCompanyNews(ticker string, records []*data.CompanyNews) error {
	part := myCache.partition(ticker)
	part.mu.Lock()
	defer part.mu.Unlock()

	merged, err := Merge(part.companyNews, records)
	if err != nil {
		return fmt.Errorf("set company news for %s: %w", ticker, err)
	}

	part.companyNews = merged
	myCache.persist(ticker, data.CompanyNewsFile, merged)
	return nil
}

// GetLineItems returns the cached result of a line-item query. Only an
// exact match on end date, period, and field set hits; an empty period
// defaults to "ttm".
func (myCache *Cache) GetLineItems(ticker string, fields []string, endDate string, period string) ([]data.LineItem, bool) {
	if period == "" {
		period = "ttm"
	}

	part, ok := myCache.partitions.Get(ticker)
	if !ok {
		return nil, false
	}

	part.mu.Lock()
	defer part.mu.Unlock()
	records, ok := part.lineItems[LineItemKey(fields, endDate, period)]
	return records, ok
}

// SetLineItems stores records verbatim under the query's composite key,
// replacing any prior entry for the exact same query, and rewrites the
// line items snapshot on disk. Unlike the other collections line items
// are not merged: each query's result is cached whole.
func (myCache *Cache) SetLineItems(ticker string, fields []string, endDate string, period string, records []data.LineItem) {
	if period == "" {
		period = "ttm"
	}

	part := myCache.partition(ticker)
	part.mu.Lock()
	defer part.mu.Unlock()

	part.lineItems[LineItemKey(fields, endDate, period)] = records
	myCache.persist(ticker, data.LineItemsFile, part.lineItems)
}

// TickerSummary reports how many records each collection holds for one
// ticker.
type TickerSummary struct {
	Ticker           string
	Prices           int
	FinancialMetrics int
	LineItemQueries  int
	InsiderTrades    int
	CompanyNews      int
}

// Tickers returns the symbols with at least one cached collection, in
// sorted order.
func (myCache *Cache) Tickers() []string {
	tickers := make([]string, 0, int(myCache.partitions.Len()))
	myCache.partitions.ForEach(func(ticker string, _ *partition) bool {
		tickers = append(tickers, ticker)
		return true
	})

	sort.Strings(tickers)
	return tickers
}

// Summary returns per-ticker record counts, sorted by ticker.
func (myCache *Cache) Summary() []*TickerSummary {
	summaries := make([]*TickerSummary, 0, int(myCache.partitions.Len()))

	myCache.partitions.ForEach(func(ticker string, part *partition) bool {
		part.mu.Lock()
		summaries = append(summaries, &TickerSummary{
			Ticker:           ticker,
			Prices:           len(part.prices),
			FinancialMetrics: len(part.financialMetrics),
			LineItemQueries:  len(part.lineItems),
			InsiderTrades:    len(part.insiderTrades),
			CompanyNews:      len(part.companyNews),
		})
		part.mu.Unlock()
		return true
	})

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Ticker < summaries[j].Ticker
	})

	return summaries
}
