// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package mkcli

import "regexp"

// placeholderPattern matches {{fieldName}} markers in template files, the
// field names correspond to project metadata placeholder keys
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z]+)\}\}`)

// substitute replaces every known placeholder in text with its value.
// Placeholders without a matching value are left as literal text, a template
// set using them is defective and the walk logs a warning for each.
func substitute(text string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		key := placeholderPattern.FindStringSubmatch(m)[1]
		if v, ok := values[key]; ok {
			return v
		}
		return m
	})
}

// unresolvedPlaceholders returns the field names of any placeholder markers
// remaining in text
func unresolvedPlaceholders(text string) []string {
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	return names
}
