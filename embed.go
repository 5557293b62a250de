// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package mkcli

import (
	"embed"
	"io/fs"
)

//go:embed all:template
var templateFS embed.FS

// DefaultTemplate returns the template tree shipped with the binary, a
// minimal npm based command line application
func DefaultTemplate() fs.FS {
	sub, err := fs.Sub(templateFS, "template")
	if err != nil {
		panic(err)
	}

	return sub
}
