// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package mkcli

import "strings"

// filePolicy selects how a template file is written to the target tree
type filePolicy int

const (
	// copied byte for byte, binary safe
	policyVerbatim filePolicy = iota
	// placeholder substitution, marker suffix stripped from the target name
	policySubstitute
	// copied verbatim to a dot-prefixed target name
	policyRename
)

// classify picks the policy for a file based on its name alone
func classify(name string) filePolicy {
	switch {
	case strings.HasSuffix(name, TemplateSuffix):
		return policySubstitute
	case name == IgnoreFile:
		return policyRename
	default:
		return policyVerbatim
	}
}
