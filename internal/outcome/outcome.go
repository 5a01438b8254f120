// Package outcome holds the per-record results the S3-triggered handlers
// return, and the policy deciding whether a downstream failure fails the
// whole invocation.
//
// Each handler records exactly one Result per notification record. The
// Batch is returned to the Lambda runtime as the invocation response.
package outcome

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Status is the terminal decision for one record.
type Status string

const (
	StatusIgnored     Status = "ignored"
	StatusSkipped     Status = "skipped"
	StatusInvalidPath Status = "invalid_path"
	StatusSuccess     Status = "success"
	StatusStarted     Status = "started"
	StatusCopied      Status = "copied"
	StatusError       Status = "error"
)

// Result is the outcome of one notification record.
type Result struct {
	Status Status `json:"status"`
	Key    string `json:"key,omitempty"`
	Reason string `json:"reason,omitempty"`
	Video  string `json:"video,omitempty"`
	Job    string `json:"job,omitempty"`
	Target string `json:"target,omitempty"`
	Error  string `json:"error,omitempty"`

	err error
}

// Failed builds an error result carrying err for Policy.Resolve.
func Failed(key string, err error) Result {
	return Result{Status: StatusError, Key: key, Error: err.Error(), err: err}
}

// Err returns the downstream error of an error result, or nil.
func (r Result) Err() error {
	if r.Status != StatusError {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return errors.New(r.Error)
}

// Batch collects the results of one invocation.
type Batch struct {
	Results []Result `json:"results"`
}

// Add appends r to the batch.
func (b *Batch) Add(r Result) {
	b.Results = append(b.Results, r)
}

// Count returns how many results have the given status.
func (b Batch) Count(status Status) int {
	n := 0
	for _, r := range b.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Errors returns the downstream errors of the batch, in record order.
func (b Batch) Errors() []error {
	var errs []error
	for i, r := range b.Results {
		if err := r.Err(); err != nil {
			errs = append(errs, fmt.Errorf("record %d (%s): %w", i, r.Key, err))
		}
	}
	return errs
}

// Policy decides whether record failures fail the invocation.
type Policy struct {
	Handler            string
	PropagateOnFailure bool
}

// Resolve logs the failures in b and, if the policy propagates, returns them joined.
// Without propagation the invocation reports success regardless.
func (p Policy) Resolve(b Batch) error {
	errs := b.Errors()
	if len(errs) == 0 {
		return nil
	}

	log.Error().
		Str("handler", p.Handler).
		Int("failed", len(errs)).
		Int("records", len(b.Results)).
		Bool("propagate", p.PropagateOnFailure).
		Msg("Records failed downstream")

	if !p.PropagateOnFailure {
		return nil
	}
	return errors.Join(errs...)
}
