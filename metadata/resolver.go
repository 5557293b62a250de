// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package metadata

//go:generate mockgen -source resolver.go -destination mock_test.go -package metadata -typed

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mkcli/mkcli/internal/validator"
)

// surveyor abstracts the survey library for testability.
type surveyor interface {
	AskOne(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error
}

type defaultSurveyor struct{}

func (d *defaultSurveyor) AskOne(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	return survey.AskOne(p, response, opts...)
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithIdentityProvider replaces the default git based identity provider
func WithIdentityProvider(p IdentityProvider) ResolverOption {
	return func(r *Resolver) {
		r.identity = p
	}
}

// WithDefaults supplies pre-set answers loaded from a defaults file
func WithDefaults(d *Defaults) ResolverOption {
	return func(r *Resolver) {
		r.defaults = d
	}
}

func withSurveyor(s surveyor) ResolverOption {
	return func(r *Resolver) {
		r.surveyor = s
	}
}

func withIsTerminal(f func() bool) ResolverOption {
	return func(r *Resolver) {
		r.isTerminal = f
	}
}

func withOutput(w io.Writer) ResolverOption {
	return func(r *Resolver) {
		r.output = w
	}
}

// Resolver collects and validates project metadata
type Resolver struct {
	surveyor   surveyor
	identity   IdentityProvider
	defaults   *Defaults
	isTerminal func() bool
	output     io.Writer
}

// NewResolver creates a resolver using git for identity lookups and the
// process terminal for prompting
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		surveyor:   &defaultSurveyor{},
		identity:   GitIdentityProvider{},
		isTerminal: isTerminal,
		output:     os.Stdout,
	}

	for _, o := range opts {
		o(r)
	}

	return r
}

// Resolve produces the complete metadata record for one invocation.
//
// With skipPrompts set no interaction happens: the name argument or the
// fixed fallback name is used, the title is derived, the description is
// empty, author and email come from the defaults file or identity provider
// and the license is MIT. An invalid name argument fails with a
// ValidationError.
//
// Otherwise every field is prompted for interactively, invalid names are
// re-prompted until they validate.
func (r *Resolver) Resolve(name string, skipPrompts bool) (*ProjectMetadata, error) {
	author, email := r.identityDefaults()
	license := DefaultLicense
	if r.defaults != nil && r.defaults.License != "" {
		license = r.defaults.License
	}

	if skipPrompts {
		if name == "" {
			name = FallbackName
		}
		if !ValidName(name) {
			return nil, &ValidationError{Name: name}
		}

		return &ProjectMetadata{
			Name:    name,
			Title:   DeriveTitle(name),
			Author:  author,
			Email:   email,
			License: license,
		}, nil
	}

	if !r.isTerminal() {
		return nil, fmt.Errorf("can only prompt for project details on a valid terminal, use --yes for defaults")
	}

	r.say("Creating a new {cyan}command line{/cyan} project", nil)

	if !ValidName(name) {
		var err error
		name, err = r.askName(name)
		if err != nil {
			return nil, err
		}
	}

	meta := &ProjectMetadata{Name: name, License: license}

	title, err := r.askString("Title", "Display title used in the README and help output of {{ .Name }}", DeriveTitle(name), map[string]any{"Name": name})
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = DeriveTitle(name)
	}
	meta.Title = title

	meta.Description, err = r.askString("Description", "A short description of what the project does", "", nil)
	if err != nil {
		return nil, err
	}

	meta.Author, err = r.askString("Author", "Recorded in the package manifest", author, nil)
	if err != nil {
		return nil, err
	}
	meta.Email = email

	err = r.surveyor.AskOne(&survey.Select{
		Message: "License",
		Options: Licenses,
		Default: license,
	}, &meta.License)
	if err != nil {
		return nil, err
	}

	return meta, nil
}

func (r *Resolver) identityDefaults() (string, string) {
	author, email := r.identity.Identity()

	if r.defaults != nil {
		if r.defaults.Author != "" {
			author = r.defaults.Author
		}
		if r.defaults.Email != "" {
			email = r.defaults.Email
		}
	}

	return author, email
}

// askName prompts for the project name until it passes charset validation,
// survey re-prompts on validator failure. A rejected name argument becomes
// the initial default so the user can correct it.
func (r *Resolver) askName(rejected string) (string, error) {
	r.say("The directory and npm package name, letters, digits, hyphens and underscores only", nil)

	var ans string
	err := r.surveyor.AskOne(&survey.Input{
		Message: "Name",
		Default: rejected,
	}, &ans, survey.WithValidator(validator.SurveyValidator(NameExpression, true)))
	if err != nil {
		return "", err
	}

	return ans, nil
}

func (r *Resolver) askString(message string, description string, dflt string, env map[string]any) (string, error) {
	r.say(description, env)

	var ans string
	err := r.surveyor.AskOne(&survey.Input{
		Message: message,
		Default: dflt,
	}, &ans)
	if err != nil {
		return "", err
	}

	return ans, nil
}

// say renders a prompt description through template functions and color
// markup before printing it
func (r *Resolver) say(text string, env map[string]any) {
	rendered, err := renderTemplate(text, env)
	if err != nil {
		rendered = text
	}

	fmt.Fprintln(r.output)
	fmt.Fprintln(r.output, rendered)
	fmt.Fprintln(r.output)
}
