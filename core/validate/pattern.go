// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package validate

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dlclark/regexp2"
	"github.com/toeirei/widgetkit/i18n"
)

// builtins use backtracking syntax (the password rule needs lookahead).
var builtins = map[string]string{
	"email":        `^[\w\.-]+@[\w\.-]+\.\w+$`,
	"phone":        `^\+?\d{7,15}$`,
	"number":       `^-?\d+(\.\d+)?$`,
	"letters":      `^[A-Za-zÁÉÍÓÚáéíóúñÑ\s]+$`,
	"alphanumeric": `^[A-Za-z0-9]+$`,
	"password":     `^(?=.*[A-Za-z])(?=.*\d)[A-Za-z\d@$!%*?&]{6,}$`,
}

var (
	compiledMu sync.Mutex
	compiled   = map[string]*regexp2.Regexp{}
)

// BuiltinNames lists the names accepted by Builtin.
func BuiltinNames() []string {
	return slices.Sorted(maps.Keys(builtins))
}

type Kind int

const (
	KindBuiltin Kind = iota
	KindCustom
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindCustom:
		return "custom"
	default:
		return "raw"
	}
}

// Pattern selects how an input is validated.
type Pattern struct {
	kind Kind
	name string
	expr string
}

func Builtin(name string) Pattern { return Pattern{kind: KindBuiltin, name: name} }

func Custom(name string) Pattern { return Pattern{kind: KindCustom, name: name} }

// Raw matches the whole value against expr.
func Raw(expr string) Pattern { return Pattern{kind: KindRaw, name: expr, expr: expr} }

func (p Pattern) Kind() Kind { return p.kind }

// Name is reported as the pattern name of validation results.
func (p Pattern) Name() string { return p.name }

// Parse maps a pattern string the way the input historically resolved it:
// a registered custom name, then a built-in name, then "" as match-all, and
// anything else as a raw expression.
func Parse(s string, reg *Registry) Pattern {
	if _, ok := reg.Lookup(s); ok && s != "" {
		return Custom(s)
	}
	if _, ok := builtins[s]; ok {
		return Builtin(s)
	}
	if s == "" {
		return Pattern{kind: KindRaw, name: "custom", expr: ".*"}
	}
	return Raw(s)
}

// Resolve returns the validator p stands for.
func (p Pattern) Resolve(reg *Registry) (Validator, error) {
	switch p.kind {
	case KindCustom:
		v, ok := reg.Lookup(p.name)
		if !ok {
			return nil, fmt.Errorf("custom validator %q: %w", p.name, ErrUnknownPattern)
		}
		return v, nil
	case KindBuiltin:
		expr, ok := builtins[p.name]
		if !ok {
			return nil, fmt.Errorf("builtin %q: %w", p.name, ErrUnknownPattern)
		}
		re, err := compile(expr)
		if err != nil {
			return nil, err
		}
		return regexValidator{name: p.name, re: re}, nil
	default:
		re, err := compile(p.expr)
		if err != nil {
			return nil, err
		}
		return regexValidator{name: p.name, re: re}, nil
	}
}

func compile(expr string) (*regexp2.Regexp, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()
	if re, ok := compiled[expr]; ok {
		return re, nil
	}
	// anchor both ends so the whole value has to match
	re, err := regexp2.Compile(`\A(?:`+expr+`)\z`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	compiled[expr] = re
	return re, nil
}

type regexValidator struct {
	name string
	re   *regexp2.Regexp
}

func (v regexValidator) Validate(value string) bool {
	ok, err := v.re.MatchString(value)
	return err == nil && ok
}

func (v regexValidator) ErrorMessage() string {
	return i18n.T("input.invalid_pattern", v.name)
}

// Result is the outcome of checking one value.
type Result struct {
	PatternName string
	Value       string
	Valid       bool
	Message     string
}

// Check validates value against p. Message is set only for invalid values.
func Check(p Pattern, reg *Registry, value string) (Result, error) {
	r := Result{PatternName: p.Name(), Value: value}
	v, err := p.Resolve(reg)
	if err != nil {
		return r, err
	}
	r.Valid = v.Validate(value)
	if !r.Valid {
		r.Message = v.ErrorMessage()
	}
	return r, nil
}
