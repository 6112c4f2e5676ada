/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodel

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynamodel/codec"
	"github.com/suparena/dynamodel/errors"
)

// resolveKey builds the store key map for an identity input. A scalar id
// resolves against the single primary key; a map id resolves against the
// composite key declaration, field by field in declaration order.
func (m *Model) resolveKey(id any) (map[string]types.AttributeValue, error) {
	if m.def.UsesCompositeKey() {
		fields, ok := id.(map[string]any)
		if !ok {
			return nil, errors.NewInvalidKeyError(m.def.Name, "",
				"composite key model requires a field map id")
		}

		key := make(map[string]types.AttributeValue, len(m.def.CompositeKey))
		for _, field := range m.def.CompositeKey {
			value, ok := fields[field]
			if !ok {
				return nil, errors.NewInvalidKeyError(m.def.Name, field, "missing composite key field")
			}
			av, err := codec.MarshalValue(value)
			if err != nil {
				return nil, errors.NewInvalidKeyError(m.def.Name, field, err.Error())
			}
			key[field] = av
		}
		return key, nil
	}

	if m.def.PrimaryKey == "" {
		return nil, errors.NewInvalidKeyError(m.def.Name, "", "no key declared")
	}

	// A map id is accepted for single-key models as long as it covers the
	// primary key field.
	if fields, ok := id.(map[string]any); ok {
		value, ok := fields[m.def.PrimaryKey]
		if !ok {
			return nil, errors.NewInvalidKeyError(m.def.Name, m.def.PrimaryKey, "missing primary key field")
		}
		id = value
	}

	av, err := codec.MarshalValue(id)
	if err != nil {
		return nil, errors.NewInvalidKeyError(m.def.Name, m.def.PrimaryKey, err.Error())
	}
	return map[string]types.AttributeValue{m.def.PrimaryKey: av}, nil
}

// keyFromAttributes resolves the model's own identity into a key map, used
// by Delete. Every declared key field must be present on the model.
func (m *Model) keyFromAttributes() (map[string]types.AttributeValue, error) {
	if m.def.UsesCompositeKey() {
		fields := make(map[string]any, len(m.def.CompositeKey))
		for _, field := range m.def.CompositeKey {
			value, ok := m.attrs[field]
			if !ok {
				return nil, errors.NewInvalidKeyError(m.def.Name, field, "model has no value for key field")
			}
			fields[field] = value
		}
		return m.resolveKey(fields)
	}

	value, ok := m.attrs[m.def.PrimaryKey]
	if !ok {
		return nil, errors.NewInvalidKeyError(m.def.Name, m.def.PrimaryKey, "model has no value for key field")
	}
	return m.resolveKey(value)
}

// hasIdentity reports whether every declared key field has a non-empty value.
func (m *Model) hasIdentity() bool {
	for _, field := range m.def.KeyFields() {
		value, ok := m.attrs[field]
		if !ok || value == nil || value == "" {
			return false
		}
	}
	return true
}
