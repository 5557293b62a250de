// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package mkcli

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mkcli/mkcli/metadata"
)

var _ = Describe("Generate", func() {
	var (
		parentDir string
		log       *testLogger
	)

	BeforeEach(func() {
		parentDir = GinkgoT().TempDir()
		log = &testLogger{}
	})

	It("Should generate a complete project with defaults", func() {
		err := Generate(context.Background(), ProjectConfig{
			Name:            "demo-proj",
			SkipPrompts:     true,
			ParentDirectory: parentDir,
			SkipGit:         true,
			SkipInstall:     true,
		}, log)
		Expect(err).ToNot(HaveOccurred())

		target := filepath.Join(parentDir, "demo-proj")

		data, err := os.ReadFile(filepath.Join(target, "package.json"))
		Expect(err).ToNot(HaveOccurred())

		manifest := map[string]any{}
		Expect(json.Unmarshal(data, &manifest)).To(Succeed())
		Expect(manifest["name"]).To(Equal("demo-proj"))
		Expect(manifest["license"]).To(Equal(metadata.LicenseMIT))
		Expect(manifest["bin"]).To(Equal(map[string]any{"demo-proj": "./cli.js"}))

		info, err := os.Stat(filepath.Join(target, "cli.js"))
		Expect(err).ToNot(HaveOccurred())
		Expect(info.Mode().Perm() & 0100).ToNot(BeZero())

		Expect(log.warnings).To(BeEmpty())
	})

	It("Should fail on an invalid name", func() {
		err := Generate(context.Background(), ProjectConfig{
			Name:            "not a name",
			SkipPrompts:     true,
			ParentDirectory: parentDir,
		}, log)

		var verr *metadata.ValidationError
		Expect(errors.As(err, &verr)).To(BeTrue())
	})

	It("Should fail when the target directory is taken", func() {
		target := filepath.Join(parentDir, "demo-proj")
		Expect(os.MkdirAll(target, 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(target, "occupied"), nil, 0644)).To(Succeed())

		err := Generate(context.Background(), ProjectConfig{
			Name:            "demo-proj",
			SkipPrompts:     true,
			ParentDirectory: parentDir,
		}, log)

		var conflict *TargetConflictError
		Expect(errors.As(err, &conflict)).To(BeTrue())
	})

	It("Should apply a defaults file", func() {
		defaults := filepath.Join(parentDir, "defaults.yaml")
		Expect(os.WriteFile(defaults, []byte("author: Jane Doe\nlicense: ISC\n"), 0644)).To(Succeed())

		err := Generate(context.Background(), ProjectConfig{
			Name:            "demo-proj",
			SkipPrompts:     true,
			ParentDirectory: parentDir,
			DefaultsFile:    defaults,
			SkipGit:         true,
			SkipInstall:     true,
		}, log)
		Expect(err).ToNot(HaveOccurred())

		data, err := os.ReadFile(filepath.Join(parentDir, "demo-proj", "package.json"))
		Expect(err).ToNot(HaveOccurred())

		manifest := map[string]any{}
		Expect(json.Unmarshal(data, &manifest)).To(Succeed())
		Expect(manifest["author"]).To(Equal("Jane Doe"))
		Expect(manifest["license"]).To(Equal(metadata.LicenseISC))
	})

	It("Should downgrade failing post-processing steps to warnings", func() {
		err := Generate(context.Background(), ProjectConfig{
			Name:            "demo-proj",
			SkipPrompts:     true,
			ParentDirectory: parentDir,
			GitCommand:      "true",
			InstallCommand:  "/no/such/installer",
		}, log)
		Expect(err).ToNot(HaveOccurred())

		Expect(log.warnings).To(HaveLen(1))
		Expect(log.warnings[0]).To(ContainSubstring("dependency installation"))
	})

	It("Should use a custom template directory", func() {
		templateDir := filepath.Join(parentDir, "custom-template")
		Expect(os.MkdirAll(templateDir, 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(templateDir, "package.json"), []byte("{\n  \"name\": \"placeholder\",\n  \"version\": \"1.0.0\"\n}\n"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(templateDir, "main.txt.template"), []byte("{{title}}\n"), 0644)).To(Succeed())

		err := Generate(context.Background(), ProjectConfig{
			Name:              "demo-proj",
			SkipPrompts:       true,
			ParentDirectory:   parentDir,
			TemplateDirectory: templateDir,
			SkipGit:           true,
			SkipInstall:       true,
		}, log)
		Expect(err).ToNot(HaveOccurred())

		content, err := os.ReadFile(filepath.Join(parentDir, "demo-proj", "main.txt"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(content)).To(Equal("Demo proj\n"))
	})
})
