/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package codec converts between native records (map of field name to Go
// value) and the DynamoDB typed attribute representation.
//
// The storage type chosen for each native type is fixed:
//
//	string                      -> S
//	int/uint/float variants     -> N (read back as float64)
//	bool                        -> BOOL
//	nil                         -> NULL
//	[]byte                      -> B
//	[][]byte                    -> BS
//	[]string                    -> SS
//	[]float64                   -> NS
//	[]any                       -> L
//	map[string]any              -> M
//	time.Time, strfmt.DateTime  -> S (RFC 3339, read back as string)
//
// Records built from the canonical read-back types round-trip exactly:
// Unmarshal(Marshal(r)) == r. Numeric input types other than float64 and
// time values are canonicalized on the way in.
package codec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
)

// Marshal converts a native record into a DynamoDB item.
func Marshal(record map[string]any) (map[string]types.AttributeValue, error) {
	item := make(map[string]types.AttributeValue, len(record))
	for name, value := range record {
		av, err := MarshalValue(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %q: %w", name, err)
		}
		item[name] = av
	}
	return item, nil
}

// MarshalValue converts a single native value into an attribute value.
func MarshalValue(value any) (types.AttributeValue, error) {
	switch v := value.(type) {
	case nil:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case string:
		return &types.AttributeValueMemberS{Value: v}, nil
	case bool:
		return &types.AttributeValueMemberBOOL{Value: v}, nil
	case float64:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v, 'f', -1, 64)}, nil
	case float32:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(float64(v), 'f', -1, 32)}, nil
	case int:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(v), 10)}, nil
	case int8:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(v), 10)}, nil
	case int16:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(v), 10)}, nil
	case int32:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(v), 10)}, nil
	case int64:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}, nil
	case uint:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint8:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint16:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint32:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint64:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(v, 10)}, nil
	case []byte:
		return &types.AttributeValueMemberB{Value: v}, nil
	case [][]byte:
		return &types.AttributeValueMemberBS{Value: v}, nil
	case []string:
		return &types.AttributeValueMemberSS{Value: v}, nil
	case []float64:
		ns := make([]string, len(v))
		for i, n := range v {
			ns[i] = strconv.FormatFloat(n, 'f', -1, 64)
		}
		return &types.AttributeValueMemberNS{Value: ns}, nil
	case []any:
		list := make([]types.AttributeValue, len(v))
		for i, elem := range v {
			av, err := MarshalValue(elem)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", i, err)
			}
			list[i] = av
		}
		return &types.AttributeValueMemberL{Value: list}, nil
	case map[string]any:
		m, err := Marshal(v)
		if err != nil {
			return nil, err
		}
		return &types.AttributeValueMemberM{Value: m}, nil
	case time.Time:
		return &types.AttributeValueMemberS{Value: v.Format(time.RFC3339Nano)}, nil
	case strfmt.DateTime:
		return &types.AttributeValueMemberS{Value: v.String()}, nil
	default:
		// Structs and pointer types fall through to the SDK marshaler.
		return attributevalue.Marshal(value)
	}
}

// Unmarshal converts a DynamoDB item back into a native record.
func Unmarshal(item map[string]types.AttributeValue) (map[string]any, error) {
	record := make(map[string]any, len(item))
	for name, av := range item {
		value, err := UnmarshalValue(av)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal field %q: %w", name, err)
		}
		record[name] = value
	}
	return record, nil
}

// UnmarshalValue converts a single attribute value into its native form.
func UnmarshalValue(av types.AttributeValue) (any, error) {
	switch tv := av.(type) {
	case *types.AttributeValueMemberNULL:
		return nil, nil
	case *types.AttributeValueMemberS:
		return tv.Value, nil
	case *types.AttributeValueMemberBOOL:
		return tv.Value, nil
	case *types.AttributeValueMemberN:
		n, err := strconv.ParseFloat(tv.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", tv.Value, err)
		}
		return n, nil
	case *types.AttributeValueMemberB:
		return tv.Value, nil
	case *types.AttributeValueMemberBS:
		return tv.Value, nil
	case *types.AttributeValueMemberSS:
		return tv.Value, nil
	case *types.AttributeValueMemberNS:
		ns := make([]float64, len(tv.Value))
		for i, s := range tv.Value {
			n, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q in number set: %w", s, err)
			}
			ns[i] = n
		}
		return ns, nil
	case *types.AttributeValueMemberL:
		list := make([]any, len(tv.Value))
		for i, elem := range tv.Value {
			value, err := UnmarshalValue(elem)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", i, err)
			}
			list[i] = value
		}
		return list, nil
	case *types.AttributeValueMemberM:
		return Unmarshal(tv.Value)
	default:
		return nil, fmt.Errorf("unknown attribute value type %T", av)
	}
}
