/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory store.Client for testing.
package mock

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynamodel/store"
)

// Client is an in-memory implementation of store.Client. Items are held per
// table, keyed by a canonical rendering of their key map. The zero value is
// not usable; construct with New.
type Client struct {
	mu      sync.RWMutex
	tables  map[string]map[string]map[string]types.AttributeValue
	schemas map[string][]string

	getError     error
	putError     error
	deleteError  error
	deleteStatus int
	iterateError error

	// Last request captured by Iterate, for planner assertions.
	LastKind    store.OpKind
	LastRequest *store.Request
}

// New creates a new mock Client.
func New() *Client {
	return &Client{
		tables:       make(map[string]map[string]map[string]types.AttributeValue),
		schemas:      make(map[string][]string),
		deleteStatus: http.StatusOK,
	}
}

// WithKeySchema declares the key fields for a table so that PutItem and
// GetItem agree on item identity.
func (c *Client) WithKeySchema(table string, fields ...string) *Client {
	c.schemas[table] = fields
	return c
}

// WithGetError makes GetItem return an error.
func (c *Client) WithGetError(err error) *Client {
	c.getError = err
	return c
}

// WithPutError makes PutItem return an error.
func (c *Client) WithPutError(err error) *Client {
	c.putError = err
	return c
}

// WithDeleteError makes DeleteItem return an error.
func (c *Client) WithDeleteError(err error) *Client {
	c.deleteError = err
	return c
}

// WithDeleteStatus sets the HTTP status DeleteItem reports on success.
func (c *Client) WithDeleteStatus(status int) *Client {
	c.deleteStatus = status
	return c
}

// WithIterateError makes iterators fail on their first advance.
func (c *Client) WithIterateError(err error) *Client {
	c.iterateError = err
	return c
}

// Seed stores an item directly, bypassing the Client interface.
func (c *Client) Seed(table string, key map[string]types.AttributeValue, item map[string]types.AttributeValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tableLocked(table)[keyString(key)] = item
}

// Len reports the number of items in a table.
func (c *Client) Len(table string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables[table])
}

func (c *Client) tableLocked(table string) map[string]map[string]types.AttributeValue {
	t, ok := c.tables[table]
	if !ok {
		t = make(map[string]map[string]types.AttributeValue)
		c.tables[table] = t
	}
	return t
}

// GetItem returns the stored item for key, or (nil, nil) when absent.
func (c *Client) GetItem(ctx context.Context, table string, key map[string]types.AttributeValue, consistent bool, projection []string) (map[string]types.AttributeValue, error) {
	if c.getError != nil {
		return nil, c.getError
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.tables[table][keyString(key)]
	if !ok {
		return nil, nil
	}
	return project(item, projection), nil
}

// PutItem stores an item under the key fields it contains. The full item is
// used as the key rendering input, so callers must seed reads with matching
// key maps; the model adapter always does.
func (c *Client) PutItem(ctx context.Context, table string, item map[string]types.AttributeValue) error {
	if c.putError != nil {
		return c.putError
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tableLocked(table)[c.keyOf(table, item)] = item
	return nil
}

// DeleteItem removes the item and reports the configured status code.
func (c *Client) DeleteItem(ctx context.Context, table string, key map[string]types.AttributeValue) (int, error) {
	if c.deleteError != nil {
		return 0, c.deleteError
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.tables[table], keyString(key))
	return c.deleteStatus, nil
}

func (c *Client) keyOf(table string, item map[string]types.AttributeValue) string {
	if fields, ok := c.schemas[table]; ok {
		key := make(map[string]types.AttributeValue)
		for _, f := range fields {
			if av, ok := item[f]; ok {
				key[f] = av
			}
		}
		if len(key) > 0 {
			return keyString(key)
		}
	}
	return keyString(item)
}

// Iterate yields the table's items, applying any EQ scan filters. Conditions
// with other operators are not evaluated by the mock; they pass every item.
func (c *Client) Iterate(ctx context.Context, kind store.OpKind, req *store.Request) store.Iterator {
	c.mu.Lock()
	c.LastKind = kind
	c.LastRequest = req
	c.mu.Unlock()

	if c.iterateError != nil {
		return &sliceIterator{err: c.iterateError}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var items []map[string]types.AttributeValue
	for _, item := range c.tables[req.TableName] {
		if !matches(item, req.ScanFilter) {
			continue
		}
		items = append(items, project(item, req.AttributesToGet))
		if req.Limit > 0 && int32(len(items)) >= req.Limit {
			break
		}
	}
	return &sliceIterator{items: items}
}

func matches(item map[string]types.AttributeValue, filter map[string]types.Condition) bool {
	for field, cond := range filter {
		if cond.ComparisonOperator != types.ComparisonOperatorEq {
			continue
		}
		av, ok := item[field]
		if !ok || len(cond.AttributeValueList) == 0 {
			return false
		}
		if render(av) != render(cond.AttributeValueList[0]) {
			return false
		}
	}
	return true
}

func project(item map[string]types.AttributeValue, projection []string) map[string]types.AttributeValue {
	if len(projection) == 0 {
		return item
	}
	out := make(map[string]types.AttributeValue, len(projection))
	for _, f := range projection {
		if av, ok := item[f]; ok {
			out[f] = av
		}
	}
	return out
}

// keyString renders a key map deterministically: fields sorted by name, each
// value tagged with its storage type.
func keyString(key map[string]types.AttributeValue) string {
	fields := make([]string, 0, len(key))
	for f := range key {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f)
		b.WriteByte('=')
		b.WriteString(render(key[f]))
		b.WriteByte(';')
	}
	return b.String()
}

func render(av types.AttributeValue) string {
	switch tv := av.(type) {
	case *types.AttributeValueMemberS:
		return "S:" + tv.Value
	case *types.AttributeValueMemberN:
		return "N:" + tv.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("BOOL:%v", tv.Value)
	case *types.AttributeValueMemberB:
		return "B:" + string(tv.Value)
	case *types.AttributeValueMemberNULL:
		return "NULL"
	default:
		return fmt.Sprintf("%#v", av)
	}
}

type sliceIterator struct {
	items []map[string]types.AttributeValue
	pos   int
	err   error
}

func (it *sliceIterator) Next(ctx context.Context) bool {
	if it.err != nil || it.pos >= len(it.items) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator) Item() map[string]types.AttributeValue {
	return it.items[it.pos-1]
}

func (it *sliceIterator) Err() error {
	return it.err
}
