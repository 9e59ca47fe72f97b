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
package cache

import (
	"errors"
	"fmt"

	"github.com/penny-vault/pvcache/data"
)

var (
	ErrMissingCacheKey = errors.New("record is missing its identity field")
)

// Merge returns the deduplicated union of existing and incoming. All
// records of existing keep their positions; records from incoming whose
// identity value is not already present are appended in their original
// order. Duplicates inside incoming itself are also collapsed to the
// first occurrence, so the result never carries two records with the
// same identity value. Nothing is re-sorted: callers that supply
// chronologically ordered batches get chronologically ordered output.
func Merge[T data.Record](existing []T, incoming []T) ([]T, error) {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	for _, record := range existing {
		seen[record.CacheKey()] = struct{}{}
	}

	fresh := make([]T, 0, len(incoming))
	for idx, record := range incoming {
		key := record.CacheKey()
		if key == "" {
			return nil, fmt.Errorf("%w: incoming record %d", ErrMissingCacheKey, idx)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		fresh = append(fresh, record)
	}

	// populating a cold partition with a clean batch needs no copy
	if len(existing) == 0 && len(fresh) == len(incoming) && incoming != nil {
		return incoming, nil
	}

	merged := make([]T, 0, len(existing)+len(fresh))
	merged = append(merged, existing...)
	merged = append(merged, fresh...)

	return merged, nil
}
