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

// CompanyNews is a single news article about a company. Date identifies
// the article within a ticker's news history.
type CompanyNews struct {
	Ticker    string  `json:"ticker"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Source    string  `json:"source"`
	Date      string  `json:"date"`
	URL       string  `json:"url"`
	Sentiment *string `json:"sentiment"`
}

func (news *CompanyNews) CacheKey() string {
	return news.Date
}
