// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

// Package metadata resolves the project metadata record that drives template
// substitution and manifest patching. Metadata is collected interactively
// through terminal prompts or assembled from defaults when prompting is
// skipped.
package metadata

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mkcli/mkcli/internal/validator"
)

// License identifiers offered during resolution
const (
	LicenseMIT    = "MIT"
	LicenseISC    = "ISC"
	LicenseApache = "Apache-2.0"
	LicenseGPL    = "GPL-3.0"
)

// DefaultLicense is used when no license is chosen
const DefaultLicense = LicenseMIT

// FallbackName is the project name used when prompts are skipped and no
// name argument was given
const FallbackName = "my-cli"

// NameExpression is the validation expression enforcing the project name
// charset, names become directory and npm package names
const NameExpression = `value matches "^[A-Za-z0-9_-]+$"`

// Licenses lists every license a project may be created with
var Licenses = []string{LicenseMIT, LicenseISC, LicenseApache, LicenseGPL}

// ProjectMetadata is the resolved record for a single project. It is created
// once per invocation and not modified afterwards.
type ProjectMetadata struct {
	Name        string
	Title       string
	Description string
	Author      string
	Email       string
	License     string
}

// ValidationError indicates a project name that fails charset validation in
// non-interactive mode, interactive input is re-prompted instead
type ValidationError struct {
	Name string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project name %q: only letters, digits, hyphens and underscores are allowed", e.Name)
}

// ValidName reports whether name is acceptable as a project name
func ValidName(name string) bool {
	if name == "" {
		return false
	}

	ok, err := validator.Validate(map[string]any{"value": name}, NameExpression)
	if err != nil {
		return false
	}

	return ok
}

// DeriveTitle turns a project name into its default display title, hyphens
// become spaces and the first letter is capitalized: "my-app" => "My app"
func DeriveTitle(name string) string {
	title := strings.ReplaceAll(name, "-", " ")
	if title == "" {
		return ""
	}

	runes := []rune(title)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// Placeholders maps placeholder field names used in template files to their
// resolved values
func (m *ProjectMetadata) Placeholders() map[string]string {
	return map[string]string{
		"name":        m.Name,
		"title":       m.Title,
		"description": m.Description,
		"author":      m.Author,
		"email":       m.Email,
		"license":     m.License,
	}
}
