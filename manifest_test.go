// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package mkcli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PatchManifest", func() {
	var targetDir string

	BeforeEach(func() {
		targetDir = filepath.Join(GinkgoT().TempDir(), "target")

		g, err := New(Config{TargetDirectory: targetDir})
		Expect(err).ToNot(HaveOccurred())
		Expect(g.Render(testMetadata())).To(Succeed())
	})

	readManifest := func() map[string]any {
		data, err := os.ReadFile(filepath.Join(targetDir, ManifestFile))
		Expect(err).ToNot(HaveOccurred())

		manifest := map[string]any{}
		Expect(json.Unmarshal(data, &manifest)).To(Succeed())
		return manifest
	}

	It("Should apply the metadata to the generated manifest", func() {
		Expect(PatchManifest(targetDir, testMetadata())).To(Succeed())

		manifest := readManifest()
		Expect(manifest["name"]).To(Equal("demo-cli"))
		Expect(manifest["description"]).To(Equal("d"))
		Expect(manifest["author"]).To(Equal("A"))
		Expect(manifest["license"]).To(Equal("ISC"))
		Expect(manifest["bin"]).To(Equal(map[string]any{"demo-cli": "./cli.js"}))
	})

	It("Should preserve unrelated manifest fields", func() {
		Expect(PatchManifest(targetDir, testMetadata())).To(Succeed())

		manifest := readManifest()
		Expect(manifest["version"]).To(Equal("0.1.0"))
		Expect(manifest["main"]).To(Equal("cli.js"))

		scripts, ok := manifest["scripts"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(scripts).To(HaveKey("start"))
		Expect(scripts).To(HaveKey("test"))
	})

	It("Should fail with a ManifestError when the manifest is missing", func() {
		Expect(os.Remove(filepath.Join(targetDir, ManifestFile))).To(Succeed())

		err := PatchManifest(targetDir, testMetadata())

		var merr *ManifestError
		Expect(errors.As(err, &merr)).To(BeTrue())
		Expect(merr.Path).To(Equal(filepath.Join(targetDir, ManifestFile)))
	})

	It("Should fail with a ManifestError on invalid manifest content", func() {
		Expect(os.WriteFile(filepath.Join(targetDir, ManifestFile), []byte("not json"), 0644)).To(Succeed())

		var merr *ManifestError
		Expect(errors.As(PatchManifest(targetDir, testMetadata()), &merr)).To(BeTrue())
	})
})
