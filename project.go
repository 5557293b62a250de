// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package mkcli

import (
	"context"
	"path/filepath"

	"github.com/mkcli/mkcli/metadata"
)

// ProjectConfig configures a full project generation run
type ProjectConfig struct {
	// Name is the optional project name, prompted for when empty
	Name string
	// SkipPrompts applies defaults instead of prompting
	SkipPrompts bool
	// TemplateDirectory overrides the embedded default template
	TemplateDirectory string
	// ParentDirectory is where the project directory is created, defaults
	// to the current working directory
	ParentDirectory string
	// DefaultsFile is an optional YAML file with author, email and license
	// defaults
	DefaultsFile string
	// SkipGit skips version control initialization
	SkipGit bool
	// SkipInstall skips dependency installation
	SkipInstall bool
	// GitCommand overrides the version control initialization command
	GitCommand string
	// InstallCommand overrides the dependency installation command
	InstallCommand string
}

// Generate runs the full pipeline: resolve metadata, materialize the
// template, patch the manifest and run the best effort post-processing
// steps. Failures in version control initialization and dependency
// installation are logged as warnings and never fail the run.
func Generate(ctx context.Context, cfg ProjectConfig, log Logger) error {
	var ropts []metadata.ResolverOption

	if cfg.DefaultsFile != "" {
		defaults, err := metadata.LoadDefaults(cfg.DefaultsFile)
		if err != nil {
			return err
		}
		ropts = append(ropts, metadata.WithDefaults(defaults))
	}

	meta, err := metadata.NewResolver(ropts...).Resolve(cfg.Name, cfg.SkipPrompts)
	if err != nil {
		return err
	}

	target := meta.Name
	if cfg.ParentDirectory != "" {
		target = filepath.Join(cfg.ParentDirectory, meta.Name)
	}

	gen, err := New(Config{
		TargetDirectory: target,
		SourceDirectory: cfg.TemplateDirectory,
	})
	if err != nil {
		return err
	}
	gen.Logger(log)

	err = gen.Render(meta)
	if err != nil {
		return err
	}

	err = PatchManifest(gen.TargetDirectory(), meta)
	if err != nil {
		return err
	}

	if !cfg.SkipGit {
		runStep(ctx, gen.TargetDirectory(), "version control initialization", cfg.GitCommand, DefaultGitCommand, log)
	}

	if !cfg.SkipInstall {
		runStep(ctx, gen.TargetDirectory(), "dependency installation", cfg.InstallCommand, DefaultInstallCommand, log)
	}

	if log != nil {
		log.Infof("Created project %s in %s", meta.Name, gen.TargetDirectory())
	}

	return nil
}

func runStep(ctx context.Context, dir string, name string, command string, dflt string, log Logger) {
	if command == "" {
		command = dflt
	}

	res := RunStep(ctx, dir, command)
	if log == nil {
		return
	}

	if res.OK {
		log.Debugf("Completed %s using %q", name, command)
	} else {
		log.Warnf("Skipping %s: %s", name, res.Output)
	}
}
