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
	"testing"

	"github.com/penny-vault/pvcache/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bar(day string, close float64) *data.Price {
	return &data.Price{Time: day, Close: close}
}

func TestMergeEmptyExisting(t *testing.T) {
	incoming := []*data.Price{bar("2024-01-01", 100), bar("2024-01-02", 101)}

	merged, err := Merge(nil, incoming)
	require.NoError(t, err)
	assert.Equal(t, incoming, merged)
}

func TestMergeSkipsDuplicates(t *testing.T) {
	existing := []*data.Price{bar("2024-01-01", 100)}
	incoming := []*data.Price{bar("2024-01-01", 100), bar("2024-01-02", 101)}

	merged, err := Merge(existing, incoming)
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, "2024-01-01", merged[0].Time)
	assert.Equal(t, "2024-01-02", merged[1].Time)
}

func TestMergePreservesOrder(t *testing.T) {
	existing := []*data.Price{bar("2024-01-03", 103), bar("2024-01-01", 100)}
	incoming := []*data.Price{bar("2024-01-04", 104), bar("2024-01-02", 102)}

	merged, err := Merge(existing, incoming)
	require.NoError(t, err)

	// existing keeps its relative order, new records append in batch order;
	// nothing is re-sorted by time
	times := make([]string, 0, len(merged))
	for _, record := range merged {
		times = append(times, record.Time)
	}
	assert.Equal(t, []string{"2024-01-03", "2024-01-01", "2024-01-04", "2024-01-02"}, times)
}

func TestMergeIdempotent(t *testing.T) {
	existing := []*data.Price{bar("2024-01-01", 100)}
	incoming := []*data.Price{bar("2024-01-02", 101), bar("2024-01-03", 102)}

	once, err := Merge(existing, incoming)
	require.NoError(t, err)

	twice, err := Merge(once, incoming)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestMergeDedupsWithinBatch(t *testing.T) {
	incoming := []*data.Price{
		bar("2024-01-01", 100),
		bar("2024-01-01", 999),
		bar("2024-01-02", 101),
	}

	merged, err := Merge(nil, incoming)
	require.NoError(t, err)
	require.Len(t, merged, 2)

	// first occurrence wins
	assert.Equal(t, 100.0, merged[0].Close)
	assert.Equal(t, "2024-01-02", merged[1].Time)
}

func TestMergeMissingIdentityField(t *testing.T) {
	incoming := []*data.Price{bar("2024-01-01", 100), bar("", 101)}

	_, err := Merge(nil, incoming)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCacheKey)
	assert.Contains(t, err.Error(), "record 1")
}

func TestMergeNeverReturnsNil(t *testing.T) {
	merged, err := Merge[*data.Price](nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
