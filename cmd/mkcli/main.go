// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/choria-io/fisk"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mkcli/mkcli"
)

var (
	name        string
	templateDir string
	parentDir   string
	defaults    string
	yes         bool
	noGit       bool
	noInstall   bool
	version     = "development"
)

func main() {
	app := fisk.New("mkcli", "Generates new command line application projects")
	app.Version(version)

	app.Help = `
Creates a new npm based command line application from a template.

Project details are gathered interactively, pass --yes to accept defaults.
After the project files are written git init and npm install are attempted,
their failure never fails the run.
`
	app.Arg("name", "The project directory and package name").StringVar(&name)
	app.Flag("yes", "Skip all prompts and apply defaults").Short('y').UnNegatableBoolVar(&yes)
	app.Flag("no-git", "Skip version control initialization").UnNegatableBoolVar(&noGit)
	app.Flag("no-install", "Skip dependency installation").UnNegatableBoolVar(&noInstall)
	app.Flag("template", "Use a custom template directory").PlaceHolder("DIR").ExistingDirVar(&templateDir)
	app.Flag("dir", "Create the project under this directory").PlaceHolder("DIR").StringVar(&parentDir)
	app.Flag("defaults", "YAML file with author, email and license defaults").PlaceHolder("FILE").ExistingFileVar(&defaults)
	app.Action(createAction)

	app.MustParseWithUsage(os.Args[1:])
}

func createAction(_ *fisk.ParseContext) error {
	cfg := mkcli.ProjectConfig{
		Name:              name,
		SkipPrompts:       yes,
		TemplateDirectory: templateDir,
		ParentDirectory:   parentDir,
		DefaultsFile:      defaults,
		SkipGit:           noGit,
		SkipInstall:       noInstall,
	}

	return mkcli.Generate(context.Background(), cfg, &consoleLogger{debug: os.Getenv("MKCLI_DEBUG") != ""})
}

type consoleLogger struct {
	debug bool
}

func (l *consoleLogger) Debugf(format string, v ...any) {
	if l.debug {
		fmt.Fprintf(os.Stderr, format+"\n", v...)
	}
}

func (l *consoleLogger) Infof(format string, v ...any) {
	fmt.Printf(format+"\n", v...)
}

func (l *consoleLogger) Warnf(format string, v ...any) {
	fmt.Fprintln(os.Stderr, text.FgYellow.Sprintf("warning: "+format, v...))
}
