// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package validate resolves input patterns into validators.
//
// A Pattern is one of three variants: a built-in regular expression picked
// by name, a custom validator looked up in a Registry, or a raw expression.
// Registries are plain values; every input gets the registry it is given.
package validate

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/toeirei/widgetkit/i18n"
)

var (
	ErrEmptyName      = errors.New("validator name must not be empty")
	ErrNilValidator   = errors.New("validator must not be nil")
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Validator is anything that can judge a value and explain a rejection.
type Validator interface {
	Validate(value string) bool
	ErrorMessage() string
}

// Func adapts a predicate to Validator. An empty Message uses the generic
// invalid input text.
type Func struct {
	Fn      func(string) bool
	Message string
}

func (f Func) Validate(value string) bool {
	return f.Fn != nil && f.Fn(value)
}

func (f Func) ErrorMessage() string {
	if f.Message == "" {
		return i18n.T("input.invalid")
	}
	return f.Message
}

// Registry maps names to custom validators.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

func NewRegistry() *Registry {
	return &Registry{validators: map[string]Validator{}}
}

func (r *Registry) Register(name string, v Validator) error {
	if name == "" {
		return ErrEmptyName
	}
	if v == nil {
		return fmt.Errorf("register %q: %w", name, ErrNilValidator)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.validators == nil {
		r.validators = map[string]Validator{}
	}
	r.validators[name] = v
	return nil
}

// Lookup is safe on a nil registry.
func (r *Registry) Lookup(name string) (Validator, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[name]
	return v, ok
}

func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.validators))
}
