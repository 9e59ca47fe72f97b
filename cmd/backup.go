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
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/penny-vault/pvcache/backblaze"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Archive the cache directory and upload it to Backblaze B2",
	Run: func(cmd *cobra.Command, args []string) {
		cacheDir := viper.GetString("cache.dir")
		bucketName := viper.GetString("backblaze.bucket")
		if bucketName == "" {
			log.Fatal().Msg("backblaze.bucket is not configured")
		}

		archiveFn := filepath.Join(os.TempDir(),
			fmt.Sprintf("pvcache-%s.tar.gz", time.Now().Format("20060102-150405")))

		if err := archiveCacheDir(cacheDir, archiveFn); err != nil {
			log.Fatal().Err(err).Str("CacheDir", cacheDir).Msg("could not archive cache directory")
		}
		defer os.Remove(archiveFn)

		dirname := time.Now().Format("2006/01")
		if err := backblaze.Upload(archiveFn, bucketName, dirname); err != nil {
			log.Fatal().Err(err).Msg("backup upload failed")
		}
	},
}

// archiveCacheDir writes dir's contents to a gzipped tar file at archiveFn
func archiveCacheDir(dir string, archiveFn string) error {
	out, err := os.Create(archiveFn)
	if err != nil {
		return err
	}
	defer out.Close()

	gzWriter := gzip.NewWriter(out)
	defer gzWriter.Close()

	tarWriter := tar.NewWriter(gzWriter)
	defer tarWriter.Close()

	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(relPath)

		if err := tarWriter.WriteHeader(header); err != nil {
			return err
		}

		reader, err := os.Open(path)
		if err != nil {
			return err
		}
		defer reader.Close()

		_, err = io.Copy(tarWriter, reader)
		return err
	})
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
