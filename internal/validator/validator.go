// Copyright (c) 2026, the mkcli authors
//
// SPDX-License-Identifier: Apache-2.0

// Package validator evaluates expr-lang expressions used to validate prompt
// input, the value being validated is available as "value"
package validator

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/expr-lang/expr"
)

// Validate evaluates a boolean expression against env
func Validate(env map[string]any, expression string) (bool, error) {
	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return false, fmt.Errorf("invalid expression: %w", err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}

	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q did not return a boolean", expression)
	}

	return b, nil
}

// SurveyValidator adapts an expression into a survey validator, survey will
// re-prompt for as long as the validator returns an error
func SurveyValidator(expression string, required bool) survey.Validator {
	return func(val interface{}) error {
		value, ok := val.(string)
		if !ok {
			return fmt.Errorf("can only validate string values")
		}

		if value == "" {
			if required {
				return errors.New("a value is required")
			}
			return nil
		}

		valid, err := Validate(map[string]any{"value": value, "Value": value}, expression)
		if err != nil {
			return err
		}

		if !valid {
			return fmt.Errorf("does not validate using %q", expression)
		}

		return nil
	}
}
