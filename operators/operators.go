/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package operators maps the chainable filter syntax's comparison symbols to
// DynamoDB comparison operators and classifies which of them are legal inside
// the KeyConditions of a Query.
package operators

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynamodel/errors"
)

// symbolTable is the full set of supported comparison symbols.
var symbolTable = map[string]types.ComparisonOperator{
	"=":            types.ComparisonOperatorEq,
	"!=":           types.ComparisonOperatorNe,
	"<>":           types.ComparisonOperatorNe,
	"<":            types.ComparisonOperatorLt,
	"<=":           types.ComparisonOperatorLe,
	">":            types.ComparisonOperatorGt,
	">=":           types.ComparisonOperatorGe,
	"begins_with":  types.ComparisonOperatorBeginsWith,
	"between":      types.ComparisonOperatorBetween,
	"contains":     types.ComparisonOperatorContains,
	"not_contains": types.ComparisonOperatorNotContains,
	"in":           types.ComparisonOperatorIn,
	"null":         types.ComparisonOperatorNull,
	"not_null":     types.ComparisonOperatorNotNull,
}

// queryEligible is the fixed set of operators DynamoDB accepts in the
// KeyConditions of a Query. Everything else forces a Scan.
var queryEligible = map[types.ComparisonOperator]struct{}{
	types.ComparisonOperatorEq:         {},
	types.ComparisonOperatorLt:         {},
	types.ComparisonOperatorLe:         {},
	types.ComparisonOperatorGt:         {},
	types.ComparisonOperatorGe:         {},
	types.ComparisonOperatorBeginsWith: {},
	types.ComparisonOperatorBetween:    {},
}

// multiValue is the set of operators whose value is a list of operands
// rather than a single one.
var multiValue = map[types.ComparisonOperator]struct{}{
	types.ComparisonOperatorBetween: {},
	types.ComparisonOperatorIn:      {},
}

// zeroValue is the set of operators that take no operand at all.
var zeroValue = map[types.ComparisonOperator]struct{}{
	types.ComparisonOperatorNull:    {},
	types.ComparisonOperatorNotNull: {},
}

// IsValid reports whether symbol is a supported comparison symbol.
func IsValid(symbol string) bool {
	_, ok := symbolTable[symbol]
	return ok
}

// ToStore translates a comparison symbol to its DynamoDB operator name.
func ToStore(symbol string) (types.ComparisonOperator, error) {
	op, ok := symbolTable[symbol]
	if !ok {
		return "", errors.NewUnsupportedOperatorError(symbol)
	}
	return op, nil
}

// QueryEligible reports whether op may appear in a Query's KeyConditions.
func QueryEligible(op types.ComparisonOperator) bool {
	_, ok := queryEligible[op]
	return ok
}

// MultiValue reports whether op consumes a list of operands (BETWEEN, IN).
func MultiValue(op types.ComparisonOperator) bool {
	_, ok := multiValue[op]
	return ok
}

// ZeroValue reports whether op takes no operand (NULL, NOT_NULL).
func ZeroValue(op types.ComparisonOperator) bool {
	_, ok := zeroValue[op]
	return ok
}
