/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodel

import (
	"context"
	"net/http"
	"time"

	"github.com/suparena/dynamodel/codec"
	"github.com/suparena/dynamodel/errors"
)

const (
	createdAtField = "created_at"
	updatedAtField = "updated_at"
)

// Save writes the model's full field set with overwrite semantics. A model
// without an identity value fires the definition's Creating hook first.
// Save reports success as a boolean: store failures are logged and swallowed,
// never returned. This is the one write path that does not surface errors;
// reads and deletes propagate them.
func (m *Model) Save(ctx context.Context) bool {
	if !m.hasIdentity() && m.def.Creating != nil {
		m.def.Creating(m)
	}

	if m.def.Timestamps {
		now := time.Now().UTC().Format(time.RFC3339)
		if _, ok := m.attrs[createdAtField]; !ok {
			m.attrs[createdAtField] = now
		}
		m.attrs[updatedAtField] = now
	}

	item, err := codec.Marshal(m.attrs)
	if err != nil {
		m.log.Error().Err(err).Str("model", m.def.Name).Str("table", m.def.Table).
			Msg("save failed: could not marshal attributes")
		return false
	}

	if err := m.client.PutItem(ctx, m.def.Table, item); err != nil {
		m.log.Error().Err(err).Str("model", m.def.Name).Str("table", m.def.Table).
			Msg("save failed")
		return false
	}

	m.exists = true
	return true
}

// Update merges attrs into the model through the fillable allowlist and
// saves. The return value is Save's.
func (m *Model) Update(ctx context.Context, attrs map[string]any) bool {
	m.Fill(attrs)
	return m.Save(ctx)
}

// Create builds a fresh model, fills it with attrs and saves it. The
// instance is returned whether or not the save succeeded; check Exists when
// persistence matters.
func (m *Model) Create(ctx context.Context, attrs map[string]any) *Model {
	nm := m.fresh()
	nm.Fill(attrs)
	nm.Save(ctx)
	return nm
}

// Delete removes the stored item identified by the model's own key fields.
// It returns true only when the store reports a 200 status. Store failures
// propagate, unlike Save.
func (m *Model) Delete(ctx context.Context) (bool, error) {
	if m.err != nil {
		return false, m.err
	}

	key, err := m.keyFromAttributes()
	if err != nil {
		return false, err
	}

	status, err := m.client.DeleteItem(ctx, m.def.Table, key)
	if err != nil {
		return false, errors.NewStoreError("DeleteItem", m.def.Table, err)
	}
	if status != http.StatusOK {
		return false, nil
	}

	m.exists = false
	return true, nil
}
