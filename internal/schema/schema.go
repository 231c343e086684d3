// Package schema defines the fixed catalog of fields a business-plan
// data file must contain before report generation can start. The catalog
// order is the canonical iteration order everywhere: validation output,
// completion prompts, and appended completion blocks all follow it.
package schema

import "fmt"

// Category groups related fields for display and filtering.
type Category string

const (
	CategoryCompany     Category = "company"
	CategoryProject     Category = "project"
	CategoryFinancial   Category = "financial"
	CategoryTechnical   Category = "technical"
	CategoryCompetition Category = "competition"
	CategoryRisk        Category = "risk"
)

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryCompany,
		CategoryProject,
		CategoryFinancial,
		CategoryTechnical,
		CategoryCompetition,
		CategoryRisk,
	}
}

// Field is one required entry in the data file.
type Field struct {
	// Name is the stable UPPER_SNAKE key used in the data file.
	Name string
	// Description is the operator hint, also fed to the AI prompt.
	Description string
	Category    Category
}

// Schema is an ordered, immutable field catalog.
type Schema struct {
	fields []Field
	byName map[string]int
}

// New builds a schema from fields in declaration order.
// Duplicate names are an error: field names are identifiers.
func New(fields []Field) (Schema, error) {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return Schema{}, fmt.Errorf("field at index %d has empty name", i)
		}
		if _, dup := byName[f.Name]; dup {
			return Schema{}, fmt.Errorf("duplicate field name: %s", f.Name)
		}
		byName[f.Name] = i
	}
	return Schema{fields: fields, byName: byName}, nil
}

// MustNew is New for static catalogs; panics on invalid input.
func MustNew(fields []Field) Schema {
	s, err := New(fields)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the catalog in declaration order.
// The returned slice must not be modified.
func (s Schema) Fields() []Field {
	return s.fields
}

// Len returns the number of fields in the catalog.
func (s Schema) Len() int {
	return len(s.fields)
}

// Lookup returns the field with the given name.
func (s Schema) Lookup(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// ByCategory returns the catalog fields of one category, in declaration order.
func (s Schema) ByCategory(c Category) []Field {
	var out []Field
	for _, f := range s.fields {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

// Describe returns the field's description, falling back to a generic
// hint for names outside the curated description set.
func Describe(f Field) string {
	if f.Description != "" {
		return f.Description
	}
	return fmt.Sprintf("Information related to %s", f.Name)
}
