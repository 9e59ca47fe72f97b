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
	"errors"
	"fmt"
	"os"

	"github.com/penny-vault/pvcache/data"
	"github.com/penny-vault/pvcache/healthcheck"
	"github.com/penny-vault/pvcache/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every cache snapshot on disk still parses",
	Long: `The verify sub-command walks the cache directory and re-parses every
collection snapshot. Corrupt files are reported but do not stop the
scan; the command exits non-zero if any file failed. When
healthchecks.verify_id is configured the result is reported to
healthchecks.io, making verify suitable for a cron job.`,
	Run: func(cmd *cobra.Command, args []string) {
		myStore := store.New(viper.GetString("cache.dir"))

		tickers, err := myStore.Tickers()
		if err != nil {
			log.Fatal().Err(err).Msg("could not scan cache directory")
		}

		numFiles := 0
		numCorrupt := 0

		for _, ticker := range tickers {
			for _, collection := range data.CollectionFiles {
				var doc any
				found, err := myStore.Load(ticker, collection, &doc)
				if err != nil {
					numCorrupt++
					if errors.Is(err, store.ErrCorruptFile) {
						log.Error().Err(err).Str("Ticker", ticker).Str("FileName", collection).Msg("snapshot is corrupt")
					} else {
						log.Error().Err(err).Str("Ticker", ticker).Str("FileName", collection).Msg("snapshot is unreadable")
					}
					continue
				}
				if found {
					numFiles++
				}
			}
		}

		fmt.Printf("verified %d snapshot files across %d tickers (%d corrupt)\n", numFiles, len(tickers), numCorrupt)

		if checkID := viper.GetString("healthchecks.verify_id"); checkID != "" {
			report := healthcheck.Ping
			if numCorrupt > 0 {
				report = healthcheck.Fail
			}
			if err := report(checkID); err != nil {
				log.Error().Err(err).Msg("could not report verify result to healthchecks.io")
			}
		}

		if numCorrupt > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
