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

// FinancialMetrics holds the valuation, profitability, efficiency,
// liquidity, leverage, and growth ratios reported for one fiscal period.
// Ratio fields are pointers because upstream providers omit metrics they
// cannot compute for a given company and period.
type FinancialMetrics struct {
	Ticker       string `json:"ticker"`
	ReportPeriod string `json:"report_period"`
	Period       string `json:"period"`
	Currency     string `json:"currency"`

	MarketCap                    *float64 `json:"market_cap"`
	EnterpriseValue              *float64 `json:"enterprise_value"`
	PriceToEarningsRatio         *float64 `json:"price_to_earnings_ratio"`
	PriceToBookRatio             *float64 `json:"price_to_book_ratio"`
	PriceToSalesRatio            *float64 `json:"price_to_sales_ratio"`
	EnterpriseValueToEbitdaRatio *float64 `json:"enterprise_value_to_ebitda_ratio"`
	EnterpriseValueToRevenue     *float64 `json:"enterprise_value_to_revenue_ratio"`
	FreeCashFlowYield            *float64 `json:"free_cash_flow_yield"`
	PegRatio                     *float64 `json:"peg_ratio"`

	GrossMargin     *float64 `json:"gross_margin"`
	OperatingMargin *float64 `json:"operating_margin"`
	NetMargin       *float64 `json:"net_margin"`

	ReturnOnEquity          *float64 `json:"return_on_equity"`
	ReturnOnAssets          *float64 `json:"return_on_assets"`
	ReturnOnInvestedCapital *float64 `json:"return_on_invested_capital"`

	AssetTurnover          *float64 `json:"asset_turnover"`
	InventoryTurnover      *float64 `json:"inventory_turnover"`
	ReceivablesTurnover    *float64 `json:"receivables_turnover"`
	DaysSalesOutstanding   *float64 `json:"days_sales_outstanding"`
	OperatingCycle         *float64 `json:"operating_cycle"`
	WorkingCapitalTurnover *float64 `json:"working_capital_turnover"`

	CurrentRatio           *float64 `json:"current_ratio"`
	QuickRatio             *float64 `json:"quick_ratio"`
	CashRatio              *float64 `json:"cash_ratio"`
	OperatingCashFlowRatio *float64 `json:"operating_cash_flow_ratio"`

	DebtToEquity     *float64 `json:"debt_to_equity"`
	DebtToAssets     *float64 `json:"debt_to_assets"`
	InterestCoverage *float64 `json:"interest_coverage"`

	RevenueGrowth          *float64 `json:"revenue_growth"`
	EarningsGrowth         *float64 `json:"earnings_growth"`
	BookValueGrowth        *float64 `json:"book_value_growth"`
	EarningsPerShareGrowth *float64 `json:"earnings_per_share_growth"`
	FreeCashFlowGrowth     *float64 `json:"free_cash_flow_growth"`
	OperatingIncomeGrowth  *float64 `json:"operating_income_growth"`
	EbitdaGrowth           *float64 `json:"ebitda_growth"`
	PayoutRatio            *float64 `json:"payout_ratio"`
	EarningsPerShare       *float64 `json:"earnings_per_share"`
	BookValuePerShare      *float64 `json:"book_value_per_share"`
	FreeCashFlowPerShare   *float64 `json:"free_cash_flow_per_share"`
}

func (metrics *FinancialMetrics) CacheKey() string {
	return metrics.ReportPeriod
}
