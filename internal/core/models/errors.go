package models

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyAggregation = errors.New("no entity holds the requested field")
)

// AggregationError reports which aggregate failed on which field.
type AggregationError struct {
	Op    string
	Field string
	Err   error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("%s(%q): %v", e.Op, e.Field, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

func emptyAggregation(op, field string) error {
	return &AggregationError{Op: op, Field: field, Err: ErrEmptyAggregation}
}
