package template

import "github.com/shopspring/decimal"

// FieldType enumerates the input kinds a template field can declare.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldNumber   FieldType = "number"
)

// Field describes one input of a report template. ID is stable and doubles as
// the submission key; Label is what ends up in the assembled report text.
type Field struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// Category splits the catalog between medical and dental templates.
type Category string

const (
	CategoryMedical Category = "medical"
	CategoryDental  Category = "dental"
)

// Template is a named, ordered set of field descriptors. Templates are defined
// at process start and never mutated; reports keep no reference to them after
// assembly.
type Template struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     Category        `json:"category"`
	Icon         string          `json:"icon"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	Fields       []Field         `json:"fields"`
}
