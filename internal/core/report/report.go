// Package report turns a models.Collection into per-field summaries and
// renders them as text, JSON or YAML.
package report

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/fields"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/models"
)

// Summary holds every aggregate of one field.
type Summary struct {
	Field  string        `json:"field" yaml:"field"`
	Count  int           `json:"count" yaml:"count"`
	Mean   float64       `json:"mean" yaml:"mean"`
	Mode   fields.Number `json:"mode" yaml:"mode"`
	Median float64       `json:"median" yaml:"median"`
	Min    fields.Number `json:"min" yaml:"min"`
	Max    fields.Number `json:"max" yaml:"max"`
}

// Report is the result of summarizing a collection.
type Report struct {
	Digest    string    `json:"digest" yaml:"digest"`
	Entities  int       `json:"entities" yaml:"entities"`
	Summaries []Summary `json:"summaries" yaml:"summaries"`
}

// Summarize computes all aggregates of field. It fails with
// models.ErrEmptyAggregation when no entity holds the field.
func Summarize(c *models.Collection, field string) (Summary, error) {
	s := Summary{Field: field, Count: c.Count(field)}

	var err error
	if s.Mean, err = c.Mean(field); err != nil {
		return Summary{}, err
	}
	if s.Mode, err = c.Mode(field); err != nil {
		return Summary{}, err
	}
	if s.Median, err = c.Median(field); err != nil {
		return Summary{}, err
	}
	if s.Min, err = c.Min(field); err != nil {
		return Summary{}, err
	}
	if s.Max, err = c.Max(field); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// Build summarizes the requested fields, or every field present in the
// collection when none are given.
func Build(c *models.Collection, fieldNames ...string) (*Report, error) {
	if len(fieldNames) == 0 {
		fieldNames = c.FieldNames()
	}

	r := &Report{
		Digest:    DigestString(c.Digest()),
		Entities:  c.Len(),
		Summaries: make([]Summary, 0, len(fieldNames)),
	}

	var errs []error
	for _, name := range fieldNames {
		s, err := Summarize(c, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.Summaries = append(r.Summaries, s)
	}
	if len(errs) > 0 {
		return r, fmt.Errorf("build report: %w", errors.Join(errs...))
	}
	return r, nil
}

// DigestString encodes a collection digest as base58.
func DigestString(digest uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], digest)
	return base58.Encode(buf[:])
}
