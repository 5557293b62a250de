// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

package mkcli

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// Default commands for the best effort post-processing steps, both may be
// overridden through ProjectConfig
const (
	DefaultGitCommand     = "git init"
	DefaultInstallCommand = "npm install"
)

// StepResult is the outcome of a best effort external step. Failures never
// abort project generation, the orchestrator reports them as warnings.
type StepResult struct {
	OK     bool
	Output string
}

// RunStep runs an external command in dir and captures its combined output.
// A cancelled or timed out context counts as an ordinary step failure.
func RunStep(ctx context.Context, dir string, command string) StepResult {
	parts, err := shellquote.Split(command)
	if err != nil {
		return StepResult{Output: fmt.Sprintf("invalid command %q: %v", command, err)}
	}
	if len(parts) == 0 {
		return StepResult{Output: "empty command"}
	}

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return StepResult{Output: fmt.Sprintf("%v: %s", err, out)}
	}

	return StepResult{OK: true, Output: string(out)}
}
