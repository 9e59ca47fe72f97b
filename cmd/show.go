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
package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/penny-vault/pvcache/data"
	"github.com/penny-vault/pvcache/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var collectionFiles = map[string]string{
	"prices":            data.PricesFile,
	"financial_metrics": data.FinancialMetricsFile,
	"line_items":        data.LineItemsFile,
	"insider_trades":    data.InsiderTradesFile,
	"company_news":      data.CompanyNewsFile,
}

var showCmd = &cobra.Command{
	Use:   "show <ticker> <collection>",
	Short: "Dump one cached collection for a ticker as JSON",
	Long: `The show sub-command prints the stored records of a single collection for
a single ticker. Collection is one of: prices, financial_metrics,
line_items, insider_trades, company_news.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ticker := args[0]
		collection, ok := collectionFiles[args[1]]
		if !ok {
			log.Fatal().Str("Collection", args[1]).Msg("unknown collection name")
		}

		myStore := store.New(viper.GetString("cache.dir"))

		var doc any
		found, err := myStore.Load(ticker, collection, &doc)
		if err != nil {
			log.Fatal().Err(err).Str("Ticker", ticker).Str("FileName", collection).Msg("could not load cache file")
		}
		if !found {
			log.Fatal().Str("Ticker", ticker).Str("FileName", collection).Msg("collection has never been cached for ticker")
		}

		raw, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal records")
		}

		fmt.Println(string(raw))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
