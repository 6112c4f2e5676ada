/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodel

import "fmt"

// IndexKey declares that a field is the key attribute of a secondary index.
// Declarations are ordered; the query planner considers them in order.
type IndexKey struct {
	// Field is the attribute name the index is keyed on.
	Field string `yaml:"field"`

	// Index is the DynamoDB index name.
	Index string `yaml:"index"`
}

// Definition is the static half of a model: table, identity, indexes and the
// mass-assignment allowlist. Definitions are built once (in code or from a
// YAML manifest) and never mutated at runtime.
type Definition struct {
	// Name identifies the model in the registry and in error messages.
	Name string `yaml:"-"`

	// Table is the DynamoDB table name.
	Table string `yaml:"table"`

	// PrimaryKey is the single identity field. Ignored when CompositeKey is set.
	PrimaryKey string `yaml:"primaryKey"`

	// CompositeKey is the ordered list of identity fields for tables with a
	// partition and sort key. When set it takes precedence over PrimaryKey.
	CompositeKey []string `yaml:"compositeKey"`

	// Indexes are the ordered index-key declarations used by the planner.
	Indexes []IndexKey `yaml:"indexes"`

	// Fillable is the mass-assignment allowlist. Empty means every field is
	// fillable.
	Fillable []string `yaml:"fillable"`

	// Timestamps enables created_at/updated_at stamping on save.
	Timestamps bool `yaml:"timestamps"`

	// Creating, when set, is invoked before the first save of a model that
	// has no identity value yet.
	Creating func(*Model) `yaml:"-"`
}

// Validate checks that the definition can serve as a model's identity.
func (d *Definition) Validate() error {
	if d.Table == "" {
		return fmt.Errorf("model %q: table name is required", d.Name)
	}
	if d.PrimaryKey == "" && len(d.CompositeKey) == 0 {
		return fmt.Errorf("model %q: a primary key or composite key is required", d.Name)
	}
	for _, idx := range d.Indexes {
		if idx.Field == "" || idx.Index == "" {
			return fmt.Errorf("model %q: index declarations need both field and index name", d.Name)
		}
	}
	return nil
}

// UsesCompositeKey reports whether identity is formed from multiple fields.
func (d *Definition) UsesCompositeKey() bool {
	return len(d.CompositeKey) > 0
}

// KeyFields returns the identity fields in declaration order.
func (d *Definition) KeyFields() []string {
	if d.UsesCompositeKey() {
		return d.CompositeKey
	}
	return []string{d.PrimaryKey}
}

// IsFillable reports whether field may be set through mass assignment.
func (d *Definition) IsFillable(field string) bool {
	if len(d.Fillable) == 0 {
		return true
	}
	for _, f := range d.Fillable {
		if f == field {
			return true
		}
	}
	return false
}
