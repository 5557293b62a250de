// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package mkcli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkcli/mkcli/metadata"
)

// ManifestFile is the npm package manifest generated into every project
const ManifestFile = "package.json"

// PatchManifest rewrites the generated package.json with the resolved
// project metadata: name, description, author and license are overwritten
// and the bin entry maps the project name to the entry point script
func PatchManifest(targetDir string, meta *metadata.ProjectMetadata) error {
	path := filepath.Join(targetDir, ManifestFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return &ManifestError{Path: path, Err: err}
	}

	manifest := map[string]any{}
	err = json.Unmarshal(data, &manifest)
	if err != nil {
		return &ManifestError{Path: path, Err: fmt.Errorf("invalid manifest: %w", err)}
	}

	manifest["name"] = meta.Name
	manifest["description"] = meta.Description
	manifest["author"] = meta.Author
	manifest["license"] = meta.License
	manifest["bin"] = map[string]any{
		meta.Name: "./" + EntryPointFile,
	}

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return &ManifestError{Path: path, Err: err}
	}
	out = append(out, '\n')

	err = os.WriteFile(path, out, 0644)
	if err != nil {
		return &ManifestError{Path: path, Err: err}
	}

	return nil
}
