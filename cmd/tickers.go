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

	"github.com/penny-vault/pvcache/cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var tickersCmd = &cobra.Command{
	Use:   "tickers",
	Short: "List tickers present in the cache",
	Run: func(cmd *cobra.Command, args []string) {
		myCache, err := cache.New(viper.GetString("cache.dir"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not open cache")
		}

		for _, ticker := range myCache.Tickers() {
			fmt.Println(ticker)
		}
	},
}

func init() {
	rootCmd.AddCommand(tickersCmd)
}
