// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"bytes"
	"os"
	"regexp"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/jedib0t/go-pretty/v6/text"
	terminal "golang.org/x/term"
)

func isTerminal() bool {
	return terminal.IsTerminal(int(os.Stdin.Fd())) && terminal.IsTerminal(int(os.Stdout.Fd()))
}

func renderTemplate(tmpl string, env map[string]any) (string, error) {
	t, err := template.New("prompt").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return "", err
	}

	out := bytes.NewBuffer([]byte{})

	err = t.Execute(out, env)
	if err != nil {
		return "", err
	}

	return colorMarkup(out.String()), nil
}

var colorMap = map[string]text.Color{
	"bold":    text.Bold,
	"red":     text.FgRed,
	"green":   text.FgGreen,
	"yellow":  text.FgYellow,
	"blue":    text.FgBlue,
	"magenta": text.FgMagenta,
	"cyan":    text.FgCyan,
	"white":   text.FgWhite,
}

// matches innermost tag pairs only, nesting is resolved by iterating
var colorTagPattern = regexp.MustCompile(`\{(\w+)\}([^{}]*)\{/(\w+)\}`)

// colorMarkup colorizes tags like {cyan}text{/cyan}, nested tags are handled
// by replacing innermost pairs until no tags remain
func colorMarkup(input string) string {
	for {
		replaced := colorTagPattern.ReplaceAllStringFunc(input, func(m string) string {
			parts := colorTagPattern.FindStringSubmatch(m)
			c, ok := colorMap[parts[1]]
			if !ok || parts[1] != parts[3] {
				return m
			}
			return c.Sprint(parts[2])
		})

		if replaced == input {
			return replaced
		}
		input = replaced
	}
}
