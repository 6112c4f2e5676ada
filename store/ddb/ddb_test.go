/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/rs/zerolog"

	"github.com/suparena/dynamodel/store"
)

// fakeAPI scripts SDK responses for unit tests.
type fakeAPI struct {
	getOut    *sdk.GetItemOutput
	getErr    error
	putErr    error
	deleteErr error

	scanPages  []*sdk.ScanOutput
	queryPages []*sdk.QueryOutput
	scanCalls  int
	queryCalls int

	lastScan  *sdk.ScanInput
	lastQuery *sdk.QueryInput
}

func (f *fakeAPI) GetItem(ctx context.Context, in *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut != nil {
		return f.getOut, nil
	}
	return &sdk.GetItemOutput{}, nil
}

func (f *fakeAPI) PutItem(ctx context.Context, in *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &sdk.PutItemOutput{}, nil
}

func (f *fakeAPI) DeleteItem(ctx context.Context, in *sdk.DeleteItemInput, _ ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &sdk.DeleteItemOutput{}, nil
}

func (f *fakeAPI) Scan(ctx context.Context, in *sdk.ScanInput, _ ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	f.lastScan = in
	if f.scanCalls >= len(f.scanPages) {
		return &sdk.ScanOutput{}, nil
	}
	out := f.scanPages[f.scanCalls]
	f.scanCalls++
	return out, nil
}

func (f *fakeAPI) Query(ctx context.Context, in *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	f.lastQuery = in
	if f.queryCalls >= len(f.queryPages) {
		return &sdk.QueryOutput{}, nil
	}
	out := f.queryPages[f.queryCalls]
	f.queryCalls++
	return out, nil
}

func item(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func TestGetItemAbsent(t *testing.T) {
	c := New(&fakeAPI{}, zerolog.Nop())

	got, err := c.GetItem(context.Background(), "t", item("a1"), true, nil)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if got != nil {
		t.Error("absent item should be nil")
	}
}

func TestGetItemFound(t *testing.T) {
	api := &fakeAPI{getOut: &sdk.GetItemOutput{Item: item("a1")}}
	c := New(api, zerolog.Nop())

	got, err := c.GetItem(context.Background(), "t", item("a1"), true, []string{"id"})
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if got == nil {
		t.Fatal("item should be returned")
	}
}

func TestDeleteItemStatus(t *testing.T) {
	c := New(&fakeAPI{}, zerolog.Nop())

	status, err := c.DeleteItem(context.Background(), "t", item("a1"))
	if err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("successful delete should report 200, got %d", status)
	}
}

func TestDeleteItemStatusFromResponseError(t *testing.T) {
	cause := &smithyhttp.ResponseError{
		Response: &smithyhttp.Response{Response: &http.Response{StatusCode: http.StatusForbidden}},
		Err:      errors.New("forbidden"),
	}
	c := New(&fakeAPI{deleteErr: cause}, zerolog.Nop())

	status, err := c.DeleteItem(context.Background(), "t", item("a1"))
	if err == nil {
		t.Fatal("DeleteItem should propagate the error")
	}
	if status != http.StatusForbidden {
		t.Errorf("status should be recovered from the response error, got %d", status)
	}
}

func TestIterateScanPagination(t *testing.T) {
	api := &fakeAPI{
		scanPages: []*sdk.ScanOutput{
			{Items: []map[string]types.AttributeValue{item("a1"), item("a2")},
				LastEvaluatedKey: item("a2")},
			{Items: []map[string]types.AttributeValue{item("a3")}},
		},
	}
	c := New(api, zerolog.Nop())

	req := &store.Request{TableName: "t", Limit: 10}
	it := c.Iterate(context.Background(), store.OpScan, req)

	var ids []string
	ctx := context.Background()
	for it.Next(ctx) {
		ids = append(ids, it.Item()["id"].(*types.AttributeValueMemberS).Value)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterate failed: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 items across pages, got %v", ids)
	}
	if api.scanCalls != 2 {
		t.Errorf("expected 2 scan pages, got %d", api.scanCalls)
	}
	if aws.ToInt32(api.lastScan.Limit) != 10 {
		t.Errorf("scan should carry the limit, got %v", api.lastScan.Limit)
	}
}

func TestIterateQueryInputShape(t *testing.T) {
	api := &fakeAPI{}
	c := New(api, zerolog.Nop())

	cond := types.Condition{
		AttributeValueList: []types.AttributeValue{&types.AttributeValueMemberN{Value: "30"}},
		ComparisonOperator: types.ComparisonOperatorGt,
	}
	req := &store.Request{
		TableName:     "t",
		IndexName:     "age-index",
		KeyConditions: map[string]types.Condition{"age": cond},
		ScanFilter:    map[string]types.Condition{"age": cond},
	}

	it := c.Iterate(context.Background(), store.OpQuery, req)
	for it.Next(context.Background()) {
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterate failed: %v", err)
	}

	in := api.lastQuery
	if in == nil {
		t.Fatal("query should have been issued")
	}
	if aws.ToString(in.IndexName) != "age-index" {
		t.Errorf("index name should be set, got %v", in.IndexName)
	}
	if len(in.KeyConditions) != 1 {
		t.Error("key conditions should be carried")
	}
	// the general filter rides along as QueryFilter on queries
	if len(in.QueryFilter) != 1 {
		t.Error("scan filter should map to QueryFilter")
	}
	if in.Limit != nil {
		t.Error("zero limit should be omitted")
	}
}

func TestIterateScanError(t *testing.T) {
	// paginator surfaces the first page error
	api := &fakeAPI{}
	c := New(api, zerolog.Nop())
	api.scanPages = nil

	req := &store.Request{TableName: "t"}
	it := c.Iterate(context.Background(), store.OpScan, req)
	for it.Next(context.Background()) {
	}
	if err := it.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// now with a failing API
	failing := New(&errAPI{err: fmt.Errorf("throttled")}, zerolog.Nop())
	it = failing.Iterate(context.Background(), store.OpScan, req)
	if it.Next(context.Background()) {
		t.Error("failing scan should not yield items")
	}
	if it.Err() == nil {
		t.Error("failing scan should report an error")
	}
}

type errAPI struct {
	fakeAPI
	err error
}

func (e *errAPI) Scan(ctx context.Context, in *sdk.ScanInput, _ ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	return nil, e.err
}
