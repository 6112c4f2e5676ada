/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUnsupportedFeature is returned when a filter uses a clause shape the
	// adapter cannot express (non-"and" connectors, closures, sub-queries)
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrUnsupportedOperator is returned when a comparison symbol has no
	// store-native translation
	ErrUnsupportedOperator = errors.New("unsupported comparison operator")

	// ErrInvalidKey is returned when an identity input cannot be resolved
	// against the model's declared key fields
	ErrInvalidKey = errors.New("invalid key")

	// ErrStore is returned when the underlying store client fails
	ErrStore = errors.New("store operation failed")
)

// UnsupportedFeatureError describes a filter construct the adapter rejects.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported feature: %s", e.Feature)
}

func (e *UnsupportedFeatureError) Is(target error) bool {
	return target == ErrUnsupportedFeature
}

// UnsupportedOperatorError describes an unrecognized comparison symbol.
type UnsupportedOperatorError struct {
	Operator string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported comparison operator %q", e.Operator)
}

func (e *UnsupportedOperatorError) Is(target error) bool {
	return target == ErrUnsupportedOperator
}

// InvalidKeyError describes a malformed or incomplete identity input.
type InvalidKeyError struct {
	Model   string
	Field   string
	Message string
}

func (e *InvalidKeyError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid key for model %q: field %q: %s", e.Model, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid key for model %q: %s", e.Model, e.Message)
}

func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// StoreError wraps a failure reported by the underlying store client.
type StoreError struct {
	Op    string
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s on table %q failed: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewUnsupportedFeatureError creates a new UnsupportedFeatureError
func NewUnsupportedFeatureError(feature string) error {
	return &UnsupportedFeatureError{Feature: feature}
}

// NewUnsupportedOperatorError creates a new UnsupportedOperatorError
func NewUnsupportedOperatorError(operator string) error {
	return &UnsupportedOperatorError{Operator: operator}
}

// NewInvalidKeyError creates a new InvalidKeyError
func NewInvalidKeyError(model, field, message string) error {
	return &InvalidKeyError{Model: model, Field: field, Message: message}
}

// NewStoreError wraps err as a StoreError for the given operation and table
func NewStoreError(op, table string, err error) error {
	return &StoreError{Op: op, Table: table, Err: err}
}

// IsUnsupportedFeature checks if an error is an unsupported feature error
func IsUnsupportedFeature(err error) bool {
	return errors.Is(err, ErrUnsupportedFeature)
}

// IsUnsupportedOperator checks if an error is an unsupported operator error
func IsUnsupportedOperator(err error) bool {
	return errors.Is(err, ErrUnsupportedOperator)
}

// IsInvalidKey checks if an error is an invalid key error
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsStoreError checks if an error is a store error
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStore)
}
