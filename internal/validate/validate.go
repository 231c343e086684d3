// Package validate computes data completeness for a project record
// against a field schema.
package validate

import (
	"github.com/kdambrauskas/plancheck/internal/record"
	"github.com/kdambrauskas/plancheck/internal/schema"
)

// DefaultThreshold is the completeness ratio below which commands
// suggest running a completion pass.
const DefaultThreshold = 0.90

// Result is the outcome of one validation pass. Computed fresh on every
// call, never persisted.
type Result struct {
	// Ratio is PresentFields / TotalFields, in [0, 1].
	Ratio float64
	// TotalFields is the schema field count.
	TotalFields int
	// PresentFields counts schema fields with a non-empty value.
	PresentFields int
	// MissingFields lists absent or empty schema fields, in schema order.
	MissingFields []schema.Field
}

// MissingNames returns the missing field names in schema order.
func (r Result) MissingNames() []string {
	names := make([]string, len(r.MissingFields))
	for i, f := range r.MissingFields {
		names[i] = f.Name
	}
	return names
}

// Complete reports whether the ratio meets threshold.
func (r Result) Complete(threshold float64) bool {
	return r.Ratio >= threshold
}

// Validate checks rec against sch. A field is present iff the record
// holds a non-empty value under its name; the most recent file occurrence
// is the live value, so a field re-blanked in a later block counts as
// missing. Low completeness is informational, never an error.
func Validate(rec *record.Record, sch schema.Schema) Result {
	res := Result{TotalFields: sch.Len()}
	for _, f := range sch.Fields() {
		if rec.Has(f.Name) {
			res.PresentFields++
		} else {
			res.MissingFields = append(res.MissingFields, f)
		}
	}
	if res.TotalFields > 0 {
		res.Ratio = float64(res.PresentFields) / float64(res.TotalFields)
	}
	return res
}
