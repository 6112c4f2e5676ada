/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package ddb implements the store.Client boundary on AWS DynamoDB.
package ddb

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/rs/zerolog"

	"github.com/suparena/dynamodel/store"
)

// API is the subset of the DynamoDB SDK client the store uses. The paginator
// interfaces cover Scan and Query.
type API interface {
	sdk.ScanAPIClient
	sdk.QueryAPIClient
	GetItem(ctx context.Context, in *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, in *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
}

// Client implements store.Client on DynamoDB.
type Client struct {
	api API
	log zerolog.Logger
}

// New wraps an already-configured DynamoDB API client.
func New(api API, log zerolog.Logger) *Client {
	return &Client{api: api, log: log}
}

// NewFromConfig creates a Client from an AWS configuration.
func NewFromConfig(cfg aws.Config, log zerolog.Logger) *Client {
	return New(sdk.NewFromConfig(cfg), log)
}

// NewWithCredentials initializes a Client using static AWS credentials.
func NewWithCredentials(ctx context.Context, accessKey, secretKey, region string, log zerolog.Logger) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	log.Info().Str("region", region).Msg("DynamoDB client initialized")
	return NewFromConfig(cfg, log), nil
}

// GetItem performs a strongly- or eventually-consistent point read.
func (c *Client) GetItem(ctx context.Context, table string, key map[string]types.AttributeValue, consistent bool, projection []string) (map[string]types.AttributeValue, error) {
	out, err := c.api.GetItem(ctx, &sdk.GetItemInput{
		TableName:       &table,
		Key:             key,
		ConsistentRead:  aws.Bool(consistent),
		AttributesToGet: projection,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return out.Item, nil
}

// PutItem writes an item, overwriting any existing item with the same key.
func (c *Client) PutItem(ctx context.Context, table string, item map[string]types.AttributeValue) error {
	_, err := c.api.PutItem(ctx, &sdk.PutItemInput{
		TableName: &table,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// DeleteItem removes an item and reports the HTTP status of the response.
// A successful call is always a 200; on failure the status is recovered from
// the transport error when available.
func (c *Client) DeleteItem(ctx context.Context, table string, key map[string]types.AttributeValue) (int, error) {
	_, err := c.api.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &table,
		Key:       key,
	})
	if err != nil {
		status := 0
		var re *smithyhttp.ResponseError
		if errors.As(err, &re) {
			status = re.HTTPStatusCode()
		}
		return status, fmt.Errorf("failed to delete item: %w", err)
	}
	return http.StatusOK, nil
}

// Iterate executes req as a Scan or Query and returns a paging iterator.
func (c *Client) Iterate(ctx context.Context, kind store.OpKind, req *store.Request) store.Iterator {
	switch kind {
	case store.OpQuery:
		return &iterator{pager: &queryPager{p: sdk.NewQueryPaginator(c.api, queryInput(req))}}
	default:
		return &iterator{pager: &scanPager{p: sdk.NewScanPaginator(c.api, scanInput(req))}}
	}
}

func scanInput(req *store.Request) *sdk.ScanInput {
	in := &sdk.ScanInput{
		TableName:       &req.TableName,
		ScanFilter:      req.ScanFilter,
		AttributesToGet: req.AttributesToGet,
	}
	if req.IndexName != "" {
		in.IndexName = &req.IndexName
	}
	if req.Limit > 0 {
		in.Limit = aws.Int32(req.Limit)
	}
	return in
}

func queryInput(req *store.Request) *sdk.QueryInput {
	// The general filter set rides along as QueryFilter; key conditions are
	// evaluated by the index, the filter after the fact.
	in := &sdk.QueryInput{
		TableName:       &req.TableName,
		KeyConditions:   req.KeyConditions,
		QueryFilter:     req.ScanFilter,
		AttributesToGet: req.AttributesToGet,
	}
	if req.IndexName != "" {
		in.IndexName = &req.IndexName
	}
	if req.Limit > 0 {
		in.Limit = aws.Int32(req.Limit)
	}
	return in
}

// pager abstracts the SDK's Scan and Query paginators behind one shape.
type pager interface {
	HasMorePages() bool
	NextPage(ctx context.Context) ([]map[string]types.AttributeValue, error)
}

type scanPager struct {
	p *sdk.ScanPaginator
}

func (s *scanPager) HasMorePages() bool { return s.p.HasMorePages() }

func (s *scanPager) NextPage(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	out, err := s.p.NextPage(ctx)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

type queryPager struct {
	p *sdk.QueryPaginator
}

func (q *queryPager) HasMorePages() bool { return q.p.HasMorePages() }

func (q *queryPager) NextPage(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	out, err := q.p.NextPage(ctx)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// iterator flattens pages into a single item sequence.
type iterator struct {
	pager pager
	page  []map[string]types.AttributeValue
	pos   int
	err   error
}

func (it *iterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	for it.pos >= len(it.page) {
		if !it.pager.HasMorePages() {
			return false
		}
		page, err := it.pager.NextPage(ctx)
		if err != nil {
			it.err = err
			return false
		}
		it.page = page
		it.pos = 0
	}
	it.pos++
	return true
}

func (it *iterator) Item() map[string]types.AttributeValue {
	return it.page[it.pos-1]
}

func (it *iterator) Err() error {
	return it.err
}
