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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("appname sanitizing", func() {

	It("derives the identifier from the lower-cased host part", func() {
		Expect(AppName("https://Example.COM/path")).To(Equal("webapp-example-com"))
	})

	It("ignores the port", func() {
		Expect(AppName("https://example.com:8080/path")).To(Equal("webapp-example-com"))
	})

	It("is deterministic and idempotent", func() {
		first := AppName("https://example.com")
		Expect(AppName("https://example.com")).To(Equal(first))
		Expect(first).To(Equal("webapp-example-com"))
	})

	It("falls back to the raw address when no host can be made out", func() {
		Expect(AppName("just-some.name")).To(Equal("webapp-justsome-name"))
		Expect(AppName("")).To(Equal("webapp-"))
	})

	It("maps dots and underscores to dashes and drops everything else", func() {
		Expect(AppName("https://foo_bar.example.com/x?y=1")).To(Equal("webapp-foo-bar-example-com"))
		Expect(AppName("wh@t a mess!")).To(Equal("webapp-whtamess"))
	})

	It("keeps digits", func() {
		Expect(AppName("https://web2.example.com")).To(Equal("webapp-web2-example-com"))
	})

	It("keeps the historic letter bound that drops z", func() {
		Expect(AppName("https://zazzle.com")).To(Equal("webapp-ale-com"))
		Expect(AppName("https://zebra.zoo")).To(Equal("webapp-ebra-oo"))
	})

	It("only ever emits lowercase letters, digits, and dashes", func() {
		for _, rawurl := range []string{
			"https://Example.COM/path",
			"ftp://WEIRD_host.example",
			"no scheme at all",
			"https://über.example",
		} {
			Expect(AppName(rawurl)).To(MatchRegexp(`^webapp-[a-y0-9-]*$`))
		}
	})

})
