package laudo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/laudohub/laudohub-api/internal/template"
)

// ValidationErrors maps field id to a human-readable message. The fixed
// submission keys (patientId, requiresPayment, price) use their wire names.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(fields, ", "))
}

// Schema validates submissions against one template. Deriving it is pure and
// deterministic: the same template always yields a schema with identical
// validation outcomes.
type Schema struct {
	rules []fieldRule
}

type fieldRule struct {
	id       string
	label    string
	kind     template.FieldType
	required bool
	options  []string
}

// DeriveSchema builds the validation schema for a template. Templates coming
// from a Registry are already structurally valid; the registry is the
// fail-fast point for configuration errors such as a select without options.
func DeriveSchema(t *template.Template) Schema {
	rules := make([]fieldRule, 0, len(t.Fields))
	for _, f := range t.Fields {
		rules = append(rules, fieldRule{
			id:       f.ID,
			label:    f.Label,
			kind:     f.Type,
			required: f.Required,
			options:  f.Options,
		})
	}
	return Schema{rules: rules}
}

// Validate checks the submission and accumulates every field error instead of
// stopping at the first one. A nil-length result means the submission is valid.
func (s Schema) Validate(sub Submission) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(sub.PatientID) == "" {
		errs["patientId"] = "Selecione um paciente"
	}
	if sub.Price.IsNegative() {
		errs["price"] = "Preço deve ser maior ou igual a zero"
	}

	for _, rule := range s.rules {
		value, present := sub.Fields[rule.id]
		if msg := rule.check(value, present); msg != "" {
			errs[rule.id] = msg
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r fieldRule) check(value any, present bool) string {
	switch r.kind {
	case template.FieldNumber:
		// Absence and zero are distinct: zero is a valid submitted number.
		if !present || value == nil {
			if r.required {
				return fmt.Sprintf("%s é obrigatório", r.label)
			}
			return ""
		}
		switch value.(type) {
		case float64, int, int64:
			return ""
		default:
			return fmt.Sprintf("%s deve ser um número", r.label)
		}

	case template.FieldCheckbox:
		// Absence is treated as false.
		if !present || value == nil {
			return ""
		}
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("%s deve ser verdadeiro ou falso", r.label)
		}
		return ""

	default: // text, textarea, select
		if !present || value == nil {
			if r.required {
				return fmt.Sprintf("%s é obrigatório", r.label)
			}
			return ""
		}
		str, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%s deve ser um texto", r.label)
		}
		if r.required && strings.TrimSpace(str) == "" {
			return fmt.Sprintf("%s é obrigatório", r.label)
		}
		if r.kind == template.FieldSelect && strings.TrimSpace(str) != "" && !contains(r.options, str) {
			return fmt.Sprintf("%s deve ser uma das opções disponíveis", r.label)
		}
		return ""
	}
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
