// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Defaults are optional pre-set answers loaded from a YAML file, they take
// precedence over the identity provider when resolving defaults
type Defaults struct {
	Author  string `yaml:"author"`
	Email   string `yaml:"email"`
	License string `yaml:"license"`
}

// LoadDefaults reads a defaults file, a license outside the supported set is
// rejected
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	defaults := &Defaults{}
	err = yaml.Unmarshal(data, defaults)
	if err != nil {
		return nil, fmt.Errorf("invalid defaults file %s: %w", path, err)
	}

	if defaults.License != "" && !slices.Contains(Licenses, defaults.License) {
		return nil, fmt.Errorf("invalid defaults file %s: unsupported license %q", path, defaults.License)
	}

	return defaults, nil
}
