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

// InsiderTrade is one insider transaction disclosed in a regulatory
// filing. FilingDate identifies the trade within a ticker's history;
// transaction details may be absent when the filing omits them.
type InsiderTrade struct {
	Ticker                       string   `json:"ticker"`
	Issuer                       *string  `json:"issuer"`
	Name                         *string  `json:"name"`
	Title                        *string  `json:"title"`
	IsBoardDirector              *bool    `json:"is_board_director"`
	TransactionDate              *string  `json:"transaction_date"`
	TransactionShares            *float64 `json:"transaction_shares"`
	TransactionPricePerShare     *float64 `json:"transaction_price_per_share"`
	TransactionValue             *float64 `json:"transaction_value"`
	SharesOwnedBeforeTransaction *float64 `json:"shares_owned_before_transaction"`
	SharesOwnedAfterTransaction  *float64 `json:"shares_owned_after_transaction"`
	SecurityTitle                *string  `json:"security_title"`
	FilingDate                   string   `json:"filing_date"`
}

func (trade *InsiderTrade) CacheKey() string {
	return trade.FilingDate
}
