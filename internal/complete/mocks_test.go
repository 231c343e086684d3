package complete

import (
	"context"
	"fmt"

	"github.com/kdambrauskas/plancheck/internal/schema"
)

// fakeGenerator returns canned values or errors per field name and
// records the order fields were requested in.
type fakeGenerator struct {
	values map[string]string
	errs   map[string]error
	calls  []string
}

func (f *fakeGenerator) GenerateFieldValue(_ context.Context, field schema.Field, _ string) (string, error) {
	f.calls = append(f.calls, field.Name)
	if err, ok := f.errs[field.Name]; ok {
		return "", err
	}
	if v, ok := f.values[field.Name]; ok {
		return v, nil
	}
	return fmt.Sprintf("generated %s", field.Name), nil
}

// fieldList builds n schema fields named F00..Fnn.
func fieldList(n int) []schema.Field {
	fields := make([]schema.Field, n)
	for i := range fields {
		fields[i] = schema.Field{
			Name:     fmt.Sprintf("F%02d", i),
			Category: schema.CategoryProject,
		}
	}
	return fields
}
