/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodel

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynamodel/codec"
	"github.com/suparena/dynamodel/errors"
	"github.com/suparena/dynamodel/operators"
	"github.com/suparena/dynamodel/store"
)

// Find resolves id into a key, issues a strongly-consistent point read and
// returns the hydrated model, or (nil, nil) when the item does not exist.
// The identity fields are re-stamped from id after hydration.
func (m *Model) Find(ctx context.Context, id any, columns ...string) (*Model, error) {
	if m.err != nil {
		return nil, m.err
	}

	key, err := m.resolveKey(id)
	if err != nil {
		return nil, err
	}

	item, err := m.client.GetItem(ctx, m.def.Table, key, true, columns)
	if err != nil {
		return nil, errors.NewStoreError("GetItem", m.def.Table, err)
	}
	if item == nil {
		return nil, nil
	}

	record, err := codec.Unmarshal(item)
	if err != nil {
		return nil, err
	}
	found := m.hydrate(record)

	// Re-stamp identity from the id the caller supplied; a projection may
	// have excluded the key fields.
	if fields, ok := id.(map[string]any); ok {
		for _, field := range m.def.KeyFields() {
			if value, ok := fields[field]; ok {
				found.attrs[field] = value
			}
		}
	} else {
		found.attrs[m.def.PrimaryKey] = id
	}
	return found, nil
}

// All executes the accumulated filter set and returns every matching model.
func (m *Model) All(ctx context.Context, columns ...string) ([]*Model, error) {
	return m.getAll(ctx, columns, -1)
}

// First is All with a result limit of one; it returns nil when nothing
// matches.
func (m *Model) First(ctx context.Context, columns ...string) (*Model, error) {
	results, err := m.getAll(ctx, columns, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// getAll plans and executes a read. With no filter clauses the plan is a
// plain Scan. Otherwise the declared index keys are checked in declaration
// order: the first one with a clause is the candidate, and if its operator
// is eligible for key conditions the plan becomes a Query on that index.
// The full clause set always rides along as the general filter.
func (m *Model) getAll(ctx context.Context, columns []string, limit int32) ([]*Model, error) {
	if m.err != nil {
		return nil, m.err
	}

	kind, req := m.plan(columns, limit)

	it := m.client.Iterate(ctx, kind, req)
	results := []*Model{}
	for it.Next(ctx) {
		record, err := codec.Unmarshal(it.Item())
		if err != nil {
			return nil, err
		}
		results = append(results, m.hydrate(record))
	}
	if err := it.Err(); err != nil {
		return nil, errors.NewStoreError(string(kind), m.def.Table, err)
	}
	return results, nil
}

func (m *Model) plan(columns []string, limit int32) (store.OpKind, *store.Request) {
	req := &store.Request{
		TableName:       m.def.Table,
		AttributesToGet: columns,
	}
	if limit > 0 {
		req.Limit = limit
	}

	if len(m.wheres) == 0 {
		return store.OpScan, req
	}

	clauses := make(map[string]types.Condition, len(m.wheres))
	for field, cond := range m.wheres {
		clauses[field] = cond
	}
	req.ScanFilter = clauses

	kind := store.OpScan
	for _, idx := range m.def.Indexes {
		cond, ok := m.wheres[idx.Field]
		if !ok {
			continue
		}
		if operators.QueryEligible(cond.ComparisonOperator) {
			kind = store.OpQuery
			req.IndexName = idx.Index
			// The whole clause set is reused as the key conditions. That
			// matches the adapter this was ported from; see DESIGN.md for
			// the caveat when non-key clauses are present.
			req.KeyConditions = clauses
		}
		break
	}
	return kind, req
}
