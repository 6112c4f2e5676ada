/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodel

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"github.com/suparena/dynamodel/errors"
	"github.com/suparena/dynamodel/store/mock"
)

func orderDef() *Definition {
	return &Definition{
		Name:         "Order",
		Table:        "orders",
		CompositeKey: []string{"userId", "orderId"},
	}
}

func TestResolveScalarKey(t *testing.T) {
	m, _ := newTestModel(t)

	key, err := m.resolveKey("a1")
	require.NoError(t, err)
	require.Equal(t, map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: "a1"},
	}, key)

	// numeric ids encode as N
	key, err = m.resolveKey(42)
	require.NoError(t, err)
	require.Equal(t, map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: "42"},
	}, key)
}

func TestResolveMapKeyForSingleKeyModel(t *testing.T) {
	m, _ := newTestModel(t)

	key, err := m.resolveKey(map[string]any{"id": "a1", "extra": "ignored"})
	require.NoError(t, err)
	require.Equal(t, map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: "a1"},
	}, key)

	_, err = m.resolveKey(map[string]any{"name": "x"})
	require.True(t, errors.IsInvalidKey(err))
}

func TestResolveCompositeKey(t *testing.T) {
	m := New(orderDef(), mock.New())

	key, err := m.resolveKey(map[string]any{"userId": "u1", "orderId": "o9"})
	require.NoError(t, err)
	require.Equal(t, map[string]types.AttributeValue{
		"userId":  &types.AttributeValueMemberS{Value: "u1"},
		"orderId": &types.AttributeValueMemberS{Value: "o9"},
	}, key)
}

func TestResolveCompositeKeyMissingField(t *testing.T) {
	m := New(orderDef(), mock.New())

	_, err := m.resolveKey(map[string]any{"userId": "u1"})
	require.True(t, errors.IsInvalidKey(err))

	var ke *errors.InvalidKeyError
	require.ErrorAs(t, err, &ke)
	require.Equal(t, "orderId", ke.Field)
}

func TestResolveCompositeKeyRejectsScalar(t *testing.T) {
	m := New(orderDef(), mock.New())

	_, err := m.resolveKey("u1")
	require.True(t, errors.IsInvalidKey(err))
}

func TestCompositeKeyPrecedence(t *testing.T) {
	// When both are declared, the composite key wins.
	def := orderDef()
	def.PrimaryKey = "id"
	m := New(def, mock.New())

	_, err := m.resolveKey("a1")
	require.True(t, errors.IsInvalidKey(err))

	key, err := m.resolveKey(map[string]any{"userId": "u1", "orderId": "o9"})
	require.NoError(t, err)
	require.Len(t, key, 2)
}

func TestKeyFromAttributes(t *testing.T) {
	m := New(orderDef(), mock.New())
	m.Set("userId", "u1").Set("orderId", "o9")

	key, err := m.keyFromAttributes()
	require.NoError(t, err)
	require.Len(t, key, 2)

	m2 := New(orderDef(), mock.New())
	m2.Set("userId", "u1")
	_, err = m2.keyFromAttributes()
	require.True(t, errors.IsInvalidKey(err))
}
