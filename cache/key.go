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
	"fmt"
	"sort"
	"strings"
)

// LineItemKey derives the composite key that identifies a line-item query
// by its end date, reporting period, and requested field set. Fields are
// sorted before joining so the order a caller lists them in does not
// produce distinct cache entries.
func LineItemKey(fields []string, endDate string, period string) string {
	sorted := make([]string, len(fields))
	copy(sorted, fields)
	sort.Strings(sorted)

	return fmt.Sprintf("%s_%s_%s", endDate, period, strings.Join(sorted, ","))
}
