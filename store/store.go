/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// OpKind selects the read primitive used to execute a Request.
type OpKind string

const (
	// OpScan reads the whole table and post-filters.
	OpScan OpKind = "Scan"

	// OpQuery reads through an index with key conditions.
	OpQuery OpKind = "Query"
)

// Request is the query shape the adapter sends to the store client. It uses
// the legacy condition parameters: each filter clause is a
// {AttributeValueList, ComparisonOperator} pair keyed by attribute name.
type Request struct {
	TableName       string
	Key             map[string]types.AttributeValue
	Item            map[string]types.AttributeValue
	ConsistentRead  bool
	AttributesToGet []string
	IndexName       string
	KeyConditions   map[string]types.Condition
	ScanFilter      map[string]types.Condition
	Limit           int32
}

// Iterator lazily yields raw items, page by page. Pagination is handled by
// the client; callers see a flat sequence.
//
//	it := client.Iterate(ctx, store.OpScan, req)
//	for it.Next(ctx) {
//		item := it.Item()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator interface {
	// Next advances to the next item, fetching further pages as needed.
	// It returns false when the sequence is exhausted or an error occurred.
	Next(ctx context.Context) bool

	// Item returns the current raw item. Only valid after Next returned true.
	Item() map[string]types.AttributeValue

	// Err returns the first error encountered while iterating, if any.
	Err() error
}

// Client is the store boundary the model adapter talks to. One configured
// client is constructed by the application's composition root and shared by
// reference across all model instances.
type Client interface {
	// GetItem performs a point read. A missing item is (nil, nil), not an error.
	GetItem(ctx context.Context, table string, key map[string]types.AttributeValue, consistent bool, projection []string) (map[string]types.AttributeValue, error)

	// PutItem writes an item with overwrite semantics.
	PutItem(ctx context.Context, table string, item map[string]types.AttributeValue) error

	// DeleteItem removes an item and reports the HTTP status code of the
	// store response.
	DeleteItem(ctx context.Context, table string, key map[string]types.AttributeValue) (int, error)

	// Iterate executes a Scan or Query request and yields raw items.
	Iterate(ctx context.Context, kind OpKind, req *Request) Iterator
}
