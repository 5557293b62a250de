// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"os/exec"
	"strings"
)

// IdentityProvider supplies the default author name and email. Lookups that
// fail yield empty strings, never errors.
type IdentityProvider interface {
	Identity() (name string, email string)
}

// GitIdentityProvider reads the author identity from the global git
// configuration
type GitIdentityProvider struct{}

func (GitIdentityProvider) Identity() (string, string) {
	return gitConfig("user.name"), gitConfig("user.email")
}

func gitConfig(key string) string {
	out, err := exec.Command("git", "config", "--get", key).Output()
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(out))
}
