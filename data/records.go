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
package data

// Record is implemented by every cached record type. CacheKey returns the
// value of the record's identity field; two records in the same collection
// with equal cache keys describe the same observation.
type Record interface {
	CacheKey() string
}

// Collection names double as the file names used for each collection's
// on-disk snapshot inside a ticker directory.
const (
	PricesFile           = "prices.json"
	FinancialMetricsFile = "financial_metrics.json"
	LineItemsFile        = "line_items.json"
	InsiderTradesFile    = "insider_trades.json"
	CompanyNewsFile      = "company_news.json"
)

// CollectionFiles lists every per-ticker snapshot file the cache knows
// about, in the order they are loaded at startup.
var CollectionFiles = []string{
	PricesFile,
	FinancialMetricsFile,
	LineItemsFile,
	InsiderTradesFile,
	CompanyNewsFile,
}
