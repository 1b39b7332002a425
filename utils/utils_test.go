// Copyright 2025 The Analytics Toolkit Authors
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

package utils_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/analytics-community/analytics_toolkit/utils"
)

var _ = Describe("ConstructPropertyName", func() {
	It("accepts a numeric property ID", func() {
		Expect(ConstructPropertyName("12345")).To(Equal("properties/12345"))
	})

	It("trims surrounding whitespace", func() {
		Expect(ConstructPropertyName(" 12345  ")).To(Equal("properties/12345"))
	})

	It("returns a full resource name unchanged", func() {
		Expect(ConstructPropertyName("properties/12345")).To(Equal("properties/12345"))
	})

	It("rejects malformed identifiers", func() {
		for _, property := range []string{
			"",
			"   ",
			"abc",
			"12a45",
			"properties/",
			"properties/abc",
			"properties/123/abc",
			"properties/123/",
		} {
			_, err := ConstructPropertyName(property)
			Expect(err).To(HaveOccurred(), "input %q should be rejected", property)
		}
	})
})

var _ = Describe("PropertyResource", func() {
	It("returns a property resource", func() {
		Expect(PropertyResource(12345)).To(Equal("properties/12345"))
	})

	It("formats zero", func() {
		Expect(PropertyResource(0)).To(Equal("properties/0"))
	})
})

var _ = Describe("NormalizeAPIName", func() {
	It("returns a normalized API field name", func() {
		Expect(NormalizeAPIName("sessionSourceMedium")).To(Equal("session_source_medium"))
	})

	It("strips unsafe characters", func() {
		Expect(NormalizeAPIName("This_is__a-FieldName.Example/with:0totals")).To(Equal("this_is_a_field_name_example_with_0_totals"))
	})
})
