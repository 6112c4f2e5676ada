/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodel

import (
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/suparena/dynamodel/store"
)

// Model is a record of a table, Eloquent style: it carries its attribute
// values, an accumulated filter-clause set, and the shared store client it
// reads from and writes to.
//
// A model moves through a simple lifecycle: new (empty), hydrated (filled
// from a read), persisted (after a successful save), deleted (removed from
// the store; the instance stays usable in memory).
type Model struct {
	def    *Definition
	client store.Client
	log    zerolog.Logger

	attrs  map[string]any
	wheres map[string]types.Condition
	err    error
	exists bool
}

// Option configures a Model at construction.
type Option func(*Model)

// WithLogger sets the logger used for swallowed save failures.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// New creates an empty model for def backed by client. The client is shared
// by reference; construct one per process and pass it to every model.
func New(def *Definition, client store.Client, opts ...Option) *Model {
	m := &Model{
		def:    def,
		client: client,
		log:    zerolog.New(os.Stderr).With().Timestamp().Logger(),
		attrs:  make(map[string]any),
		wheres: make(map[string]types.Condition),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Definition returns the model's static definition.
func (m *Model) Definition() *Definition {
	return m.def
}

// Err returns the first builder error recorded by Where, if any.
func (m *Model) Err() error {
	return m.err
}

// Exists reports whether the model is backed by a stored item.
func (m *Model) Exists() bool {
	return m.exists
}

// Attribute returns the value of a field, or nil when unset.
func (m *Model) Attribute(field string) any {
	return m.attrs[field]
}

// Attributes returns a copy of the model's field values.
func (m *Model) Attributes() map[string]any {
	out := make(map[string]any, len(m.attrs))
	for k, v := range m.attrs {
		out[k] = v
	}
	return out
}

// Set assigns a single field value, bypassing the fillable allowlist.
func (m *Model) Set(field string, value any) *Model {
	m.attrs[field] = value
	return m
}

// Fill applies the allowlisted subset of attrs to the model.
func (m *Model) Fill(attrs map[string]any) *Model {
	for k, v := range attrs {
		if m.def.IsFillable(k) {
			m.attrs[k] = v
		}
	}
	return m
}

// ForceFill applies every field of attrs, ignoring the allowlist.
func (m *Model) ForceFill(attrs map[string]any) *Model {
	for k, v := range attrs {
		m.attrs[k] = v
	}
	return m
}

// fresh returns a new empty model sharing the definition, client and logger.
func (m *Model) fresh() *Model {
	return New(m.def, m.client, WithLogger(m.log))
}

// hydrate builds a model from a native record read back from the store.
// Allowlisted fields go through Fill; the remainder is assigned directly so
// computed and protected fields survive.
func (m *Model) hydrate(record map[string]any) *Model {
	nm := m.fresh()
	nm.Fill(record)
	for k, v := range record {
		if !nm.def.IsFillable(k) {
			nm.attrs[k] = v
		}
	}
	nm.exists = true
	return nm
}

// fail records the first builder error and keeps the chain intact.
func (m *Model) fail(err error) *Model {
	if m.err == nil {
		m.err = err
	}
	return m
}
