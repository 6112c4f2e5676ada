/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package operators

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynamodel/errors"
)

func TestToStore(t *testing.T) {
	cases := []struct {
		symbol string
		want   types.ComparisonOperator
	}{
		{"=", types.ComparisonOperatorEq},
		{"!=", types.ComparisonOperatorNe},
		{"<>", types.ComparisonOperatorNe},
		{"<", types.ComparisonOperatorLt},
		{"<=", types.ComparisonOperatorLe},
		{">", types.ComparisonOperatorGt},
		{">=", types.ComparisonOperatorGe},
		{"begins_with", types.ComparisonOperatorBeginsWith},
		{"between", types.ComparisonOperatorBetween},
		{"contains", types.ComparisonOperatorContains},
		{"not_contains", types.ComparisonOperatorNotContains},
		{"in", types.ComparisonOperatorIn},
		{"null", types.ComparisonOperatorNull},
		{"not_null", types.ComparisonOperatorNotNull},
	}

	for _, c := range cases {
		t.Run(c.symbol, func(t *testing.T) {
			got, err := ToStore(c.symbol)
			if err != nil {
				t.Fatalf("ToStore(%q) returned error: %v", c.symbol, err)
			}
			if got != c.want {
				t.Errorf("ToStore(%q) = %v, want %v", c.symbol, got, c.want)
			}
			if !IsValid(c.symbol) {
				t.Errorf("IsValid(%q) should be true", c.symbol)
			}
		})
	}
}

func TestToStoreUnknownSymbol(t *testing.T) {
	for _, symbol := range []string{"~=", "like", "", "EQ"} {
		if IsValid(symbol) {
			t.Errorf("IsValid(%q) should be false", symbol)
		}
		_, err := ToStore(symbol)
		if !errors.IsUnsupportedOperator(err) {
			t.Errorf("ToStore(%q) should fail with an unsupported operator error, got %v", symbol, err)
		}
	}
}

func TestQueryEligible(t *testing.T) {
	eligible := []types.ComparisonOperator{
		types.ComparisonOperatorEq,
		types.ComparisonOperatorLt,
		types.ComparisonOperatorLe,
		types.ComparisonOperatorGt,
		types.ComparisonOperatorGe,
		types.ComparisonOperatorBeginsWith,
		types.ComparisonOperatorBetween,
	}
	for _, op := range eligible {
		if !QueryEligible(op) {
			t.Errorf("QueryEligible(%v) should be true", op)
		}
	}

	ineligible := []types.ComparisonOperator{
		types.ComparisonOperatorNe,
		types.ComparisonOperatorContains,
		types.ComparisonOperatorNotContains,
		types.ComparisonOperatorIn,
		types.ComparisonOperatorNull,
		types.ComparisonOperatorNotNull,
	}
	for _, op := range ineligible {
		if QueryEligible(op) {
			t.Errorf("QueryEligible(%v) should be false", op)
		}
	}
}

func TestOperandArity(t *testing.T) {
	if !MultiValue(types.ComparisonOperatorBetween) || !MultiValue(types.ComparisonOperatorIn) {
		t.Error("BETWEEN and IN should be multi-value operators")
	}
	if MultiValue(types.ComparisonOperatorEq) {
		t.Error("EQ should not be a multi-value operator")
	}
	if !ZeroValue(types.ComparisonOperatorNull) || !ZeroValue(types.ComparisonOperatorNotNull) {
		t.Error("NULL and NOT_NULL should be zero-value operators")
	}
	if ZeroValue(types.ComparisonOperatorContains) {
		t.Error("CONTAINS should take an operand")
	}
}
