// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package mkcli

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("substitute", func() {
	values := map[string]string{
		"name":  "demo-cli",
		"title": "Demo cli",
	}

	DescribeTable("Replacement",
		func(input string, expected string) {
			Expect(substitute(input, values)).To(Equal(expected))
		},
		Entry("single placeholder", "# {{title}}", "# Demo cli"),
		Entry("repeated placeholder", "{{name}} {{name}}", "demo-cli demo-cli"),
		Entry("multiple fields", "{{title}} ({{name}})", "Demo cli (demo-cli)"),
		Entry("unknown field left literal", "{{title}} {{unknown}}", "Demo cli {{unknown}}"),
		Entry("no placeholders", "plain text", "plain text"),
		Entry("malformed marker untouched", "{{ name }} {{name", "{{ name }} {{name"),
		Entry("empty input", "", ""),
	)

	It("Should substitute the empty string for empty values", func() {
		Expect(substitute("[{{title}}]", map[string]string{"title": ""})).To(Equal("[]"))
	})
})

var _ = Describe("unresolvedPlaceholders", func() {
	It("Should list remaining field names", func() {
		Expect(unresolvedPlaceholders("{{one}} and {{two}}")).To(Equal([]string{"one", "two"}))
	})

	It("Should be empty for resolved text", func() {
		Expect(unresolvedPlaceholders("all done")).To(BeEmpty())
	})
})

var _ = Describe("classify", func() {
	DescribeTable("Policies",
		func(name string, expected filePolicy) {
			Expect(classify(name)).To(Equal(expected))
		},
		Entry("template marker", "README.md.template", policySubstitute),
		Entry("entry point template", "cli.js.template", policySubstitute),
		Entry("ignore file", "gitignore", policyRename),
		Entry("plain file", "package.json", policyVerbatim),
		Entry("binary file", "logo.png", policyVerbatim),
		Entry("dot prefixed already", ".gitignore", policyVerbatim),
	)
})
