/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodel

import (
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynamodel/codec"
	"github.com/suparena/dynamodel/errors"
	"github.com/suparena/dynamodel/operators"
)

// Where adds a comparison clause for a field and returns the model for
// chaining. Accepted shapes:
//
//	m.Where("age", 30)                    // equality
//	m.Where("age", ">", 30)               // explicit operator
//	m.Where("age", ">", 30, "and")        // explicit connector; only "and"
//	m.Where(map[string]any{"a": 1})       // equality clause per pair
//
// A string in operator position that is not a recognized comparison symbol
// is reinterpreted as the value with an equality operator. Only one clause
// is kept per field; a later call overwrites the earlier one. Clauses
// combine conjunctively; any other connector is an unsupported feature, as
// are closures in field or value position.
//
// Builder errors are recorded on the model and reported by Err and by the
// next execution call; the chain itself never breaks.
func (m *Model) Where(field any, args ...any) *Model {
	if len(args) >= 3 {
		connector, ok := args[2].(string)
		if !ok || connector != "and" {
			return m.fail(errors.NewUnsupportedFeatureError(
				fmt.Sprintf("boolean connector %v (only \"and\" is supported)", args[2])))
		}
	}

	switch f := field.(type) {
	case string:
		return m.whereField(f, args)
	case map[string]any:
		// Equality clause per pair. The upstream adapter documented applying
		// only the first pair of a multi-field map; Go maps are unordered so
		// "first" is undefined, and every pair is applied instead.
		for k, v := range f {
			m.whereField(k, []any{v})
		}
		return m
	default:
		if reflect.ValueOf(field).Kind() == reflect.Func {
			return m.fail(errors.NewUnsupportedFeatureError("closure in field position (sub-queries are not supported)"))
		}
		return m.fail(errors.NewUnsupportedFeatureError(fmt.Sprintf("field of type %T", field)))
	}
}

func (m *Model) whereField(field string, args []any) *Model {
	symbol := "="
	var value any

	switch len(args) {
	case 0:
		return m.fail(errors.NewUnsupportedFeatureError(fmt.Sprintf("where on %q without a value", field)))
	case 1:
		value = args[0]
	default:
		if s, ok := args[0].(string); ok && operators.IsValid(s) {
			symbol = s
			value = args[1]
		} else {
			// "Forgot the operator" shorthand: treat it as the value.
			value = args[0]
		}
	}

	if value != nil && reflect.ValueOf(value).Kind() == reflect.Func {
		return m.fail(errors.NewUnsupportedFeatureError("closure in value position (nested predicates are not supported)"))
	}

	op, err := operators.ToStore(symbol)
	if err != nil {
		return m.fail(err)
	}

	operands, err := encodeOperands(op, value)
	if err != nil {
		return m.fail(err)
	}

	m.wheres[field] = types.Condition{
		AttributeValueList: operands,
		ComparisonOperator: op,
	}
	return m
}

// encodeOperands encodes the clause value into the AttributeValueList. Multi
// value operators (BETWEEN, IN) expand a slice into one operand per element;
// zero value operators (NULL, NOT_NULL) take none.
func encodeOperands(op types.ComparisonOperator, value any) ([]types.AttributeValue, error) {
	if operators.ZeroValue(op) {
		return nil, nil
	}

	if operators.MultiValue(op) {
		rv := reflect.ValueOf(value)
		if value == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return nil, errors.NewUnsupportedFeatureError(
				fmt.Sprintf("%s requires a slice of operands", op))
		}
		operands := make([]types.AttributeValue, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			av, err := codec.MarshalValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			operands[i] = av
		}
		return operands, nil
	}

	av, err := codec.MarshalValue(value)
	if err != nil {
		return nil, err
	}
	return []types.AttributeValue{av}, nil
}
