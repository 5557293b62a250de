// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

// Package mkcli generates new command line application projects from a
// template tree. A template is a directory of files that are copied into a
// fresh target directory: files carrying the template marker suffix have
// project metadata substituted into them, the version control ignore file is
// renamed to its dot-prefixed form, and everything else is copied verbatim.
package mkcli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkcli/mkcli/metadata"
)

const (
	// TemplateSuffix marks files that receive placeholder substitution,
	// the suffix is stripped from the generated filename
	TemplateSuffix = ".template"

	// IgnoreFile is stored without a leading dot so packaging tools do not
	// exclude it from the template tree, it is renamed on materialization
	IgnoreFile = "gitignore"

	// EntryPointFile is the generated project's executable script, it is
	// written with the execute bit set so the installed bin stub works
	EntryPointFile = "cli.js"
)

// Config configures a generator
type Config struct {
	// TargetDirectory is where to place the generated project, it must not
	// exist or be an empty directory
	TargetDirectory string `yaml:"target"`
	// SourceDirectory reads the template from a directory on disk
	SourceDirectory string `yaml:"source_directory"`
	// Source reads the template from any fs.FS, takes precedence over
	// SourceDirectory. When both are unset the embedded default template
	// is used.
	Source fs.FS `yaml:"-"`
}

// Logger is used for all progress and warning output, no logging is done
// without one configured
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
}

// Generator materializes a template tree into a target directory
type Generator struct {
	cfg          *Config
	log          Logger
	changedFiles []string
}

// New creates a new generator instance
func New(cfg Config) (*Generator, error) {
	err := validateConfig(&cfg)
	if err != nil {
		return nil, err
	}

	return &Generator{cfg: &cfg}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.TargetDirectory == "" {
		return fmt.Errorf("target is required")
	}

	var err error
	cfg.TargetDirectory, err = filepath.Abs(cfg.TargetDirectory)
	if err != nil {
		return fmt.Errorf("invalid target %s: %v", cfg.TargetDirectory, err)
	}

	if cfg.SourceDirectory != "" {
		_, err := os.Stat(cfg.SourceDirectory)
		if err != nil {
			return fmt.Errorf("cannot read source directory: %w", err)
		}
	}

	if cfg.Source == nil {
		if cfg.SourceDirectory == "" {
			cfg.Source = DefaultTemplate()
		} else {
			cfg.Source = os.DirFS(cfg.SourceDirectory)
		}
	}

	return nil
}

// Logger configures a logger to use, no logging is done without this
func (g *Generator) Logger(log Logger) {
	g.log = log
}

// ChangedFiles returns the list of files created during the most recent
// Render call. Paths are relative to the target directory and always use
// forward slashes as separators.
func (g *Generator) ChangedFiles() []string {
	return g.changedFiles
}

// TargetDirectory returns the absolute path of the directory being generated
func (g *Generator) TargetDirectory() string {
	return g.cfg.TargetDirectory
}

// checkTarget enforces the precondition that the target does not exist or is
// an empty directory, before anything is written
func checkTarget(path string) error {
	st, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if !st.IsDir() {
		return &TargetConflictError{Path: path}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return &TargetConflictError{Path: path}
	}

	return nil
}

// Render creates the target directory and places all template files into it
// after substitution, renaming and permission handling.
//
// Any I/O failure aborts immediately, files already written are left in
// place, the caller decides whether to remove the partial target.
func (g *Generator) Render(meta *metadata.ProjectMetadata) error {
	g.changedFiles = nil

	err := checkTarget(g.cfg.TargetDirectory)
	if err != nil {
		return err
	}

	err = os.MkdirAll(g.cfg.TargetDirectory, 0755)
	if err != nil {
		return &TemplateError{Path: g.cfg.TargetDirectory, Err: err}
	}

	values := meta.Placeholders()

	return fs.WalkDir(g.cfg.Source, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &TemplateError{Path: path, Err: err}
		}

		if path == "." {
			return nil
		}

		out := filepath.Join(g.cfg.TargetDirectory, filepath.FromSlash(path))

		switch {
		case d.IsDir():
			// directory names are never substitution targets
			err = os.Mkdir(out, 0755)
			if err != nil {
				return &TemplateError{Path: path, Err: err}
			}

		case d.Type().IsRegular():
			err = g.renderEntry(path, out, values)
			if err != nil {
				return err
			}

		default:
			return &TemplateError{Path: path, Err: fmt.Errorf("invalid file in template")}
		}

		return nil
	})
}

// renderEntry writes a single template file to its target path according to
// the policy selected by its filename
func (g *Generator) renderEntry(path string, out string, values map[string]string) error {
	data, err := fs.ReadFile(g.cfg.Source, path)
	if err != nil {
		return &TemplateError{Path: path, Err: err}
	}

	switch classify(filepath.Base(out)) {
	case policySubstitute:
		out = strings.TrimSuffix(out, TemplateSuffix)
		text := substitute(string(data), values)

		if g.log != nil {
			for _, p := range unresolvedPlaceholders(text) {
				g.log.Warnf("Unresolved placeholder {{%s}} in %s", p, path)
			}
		}

		data = []byte(text)

	case policyRename:
		out = filepath.Join(filepath.Dir(out), "."+filepath.Base(out))
	}

	return g.saveFile(out, data)
}

func (g *Generator) saveFile(out string, data []byte) error {
	mode := os.FileMode(0644)
	if filepath.Base(out) == EntryPointFile {
		mode = 0755
	}

	err := os.WriteFile(out, data, mode)
	if err != nil {
		return &TemplateError{Path: out, Err: err}
	}

	// WriteFile modes are masked by the umask, the entry point must carry
	// the execute bit regardless
	if mode == 0755 {
		err = os.Chmod(out, mode)
		if err != nil {
			return &TemplateError{Path: out, Err: err}
		}
	}

	rel, err := filepath.Rel(g.cfg.TargetDirectory, out)
	if err != nil {
		return &TemplateError{Path: out, Err: err}
	}
	g.changedFiles = append(g.changedFiles, filepath.ToSlash(rel))

	if g.log != nil {
		g.log.Infof("Rendered %s", filepath.ToSlash(rel))
	}

	return nil
}
