// Package complete implements the three completion strategies that fill
// missing business-plan fields: AI-generated, manually entered, and
// hybrid (AI suggestion reviewed by the operator). A Session threads the
// record, schema, and last validation result through one
// validate -> complete -> append -> re-validate cycle.
package complete

import (
	"context"

	"github.com/kdambrauskas/plancheck/internal/record"
	"github.com/kdambrauskas/plancheck/internal/schema"
)

// DefaultMaxFields caps how many missing fields one run completes,
// bounding collaborator call volume and operator effort.
const DefaultMaxFields = 20

// Generator produces a value for one missing field from the record
// context. Implemented by groq.Client; faked in tests.
type Generator interface {
	GenerateFieldValue(ctx context.Context, field schema.Field, recordContext string) (string, error)
}

// Strategy completes a subset of the missing fields. Implementations
// never touch the backing file; they return proposed values for the
// caller to persist. Skipped fields are omitted from the result, never
// recorded as empty strings.
type Strategy interface {
	// Method identifies the strategy in completion block headers,
	// history, and run state.
	Method() record.Method

	// Complete proposes values for missing fields, iterating in the
	// given (schema) order. The returned error is only for run-level
	// failures; per-field generation failures are skipped.
	Complete(ctx context.Context, missing []schema.Field, rec *record.Record) (map[string]string, error)
}

// capFields truncates missing to at most max entries, keeping schema
// order. max <= 0 means the default cap.
func capFields(missing []schema.Field, max int) []schema.Field {
	if max <= 0 {
		max = DefaultMaxFields
	}
	if len(missing) > max {
		return missing[:max]
	}
	return missing
}
