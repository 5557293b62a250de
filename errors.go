// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package mkcli

import "fmt"

// TargetConflictError indicates the target directory exists and is not
// empty. It is raised before anything is written.
type TargetConflictError struct {
	Path string
}

func (e *TargetConflictError) Error() string {
	return fmt.Sprintf("target directory %s already exists and is not empty", e.Path)
}

// TemplateError indicates an I/O failure while reading the template tree or
// writing the target tree. Rendering aborts immediately, files already
// written are not removed.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("rendering %s failed: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// ManifestError indicates a failure patching the generated package manifest.
// Already rendered files are unaffected.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("patching manifest %s failed: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }
