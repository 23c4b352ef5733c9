// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import tea "github.com/charmbracelet/bubbletea"

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) *Form[T] {
	form := &Form[T]{}
	for _, opt := range opts {
		opt(form)
	}
	form.activeIndex = form.nextFocusable(-1, 1)
	return form
}

func WithTitle[T any](title string) NewOpt[T] {
	return func(form *Form[T]) {
		form.Title = title
	}
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// WithInput adds input on its own row. Its value is stored under id; inputs
// with an empty id are left out of the result.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return WithRow[T](Field{ID: id, Input: input})
}

// WithRow adds several inputs side by side.
func WithRow[T any](fields ...Field) NewOpt[T] {
	return func(form *Form[T]) {
		row := formRow{}
		for _, f := range fields {
			row.items = append(row.items, len(form.items))
			form.items = append(form.items, formItem{id: f.ID, input: f.Input})
		}
		form.rows = append(form.rows, row)
	}
}
