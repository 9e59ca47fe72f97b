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
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/penny-vault/pvcache/cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display a summary of the market-data cache",
	Run: func(cmd *cobra.Command, args []string) {
		myCache, err := cache.New(viper.GetString("cache.dir"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not open cache")
		}

		summary := summaryDocument(myCache)

		r, _ := glamour.NewTermRenderer(
			// detect background color and pick either the default dark or light theme
			glamour.WithAutoStyle(),
			// wrap output at specific width (default is 80)
			glamour.WithWordWrap(80),
		)

		out, err := r.Render(summary)
		if err != nil {
			log.Fatal().Err(err).Msg("could not render summary document")
		}

		fmt.Print(out)
	},
}

// summaryDocument builds a markdown report of per-ticker record counts
func summaryDocument(myCache *cache.Cache) string {
	var doc strings.Builder

	doc.WriteString("# Market-Data Cache\n\n")
	doc.WriteString(fmt.Sprintf("Cache directory: `%s`\n\n", myCache.BaseDir()))

	summaries := myCache.Summary()
	if len(summaries) == 0 {
		doc.WriteString("The cache is empty.\n")
		return doc.String()
	}

	doc.WriteString("| Ticker | Prices | Financial Metrics | Line-Item Queries | Insider Trades | Company News |\n")
	doc.WriteString("|--------|-------:|------------------:|------------------:|---------------:|-------------:|\n")

	for _, item := range summaries {
		doc.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %d | %d |\n",
			item.Ticker, item.Prices, item.FinancialMetrics, item.LineItemQueries,
			item.InsiderTrades, item.CompanyNews))
	}

	return doc.String()
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
