package template

import (
	"errors"
	"fmt"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrDuplicateID      = errors.New("duplicate template id")
)

// Registry holds the immutable template catalog, looked up by id. Registration
// is the fail-fast point for configuration errors: a select field without
// options or a duplicate field id rejects the whole template so it is never
// listed or used for a submission.
type Registry struct {
	byID  map[string]*Template
	order []string
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Template)}
}

// Register validates and adds a template. Declaration order is preserved for
// List.
func (r *Registry) Register(t Template) error {
	if t.ID == "" {
		return errors.New("template id is required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}
	if err := validateFields(t); err != nil {
		return fmt.Errorf("template %s: %w", t.ID, err)
	}

	copy := t
	r.byID[t.ID] = &copy
	r.order = append(r.order, t.ID)
	return nil
}

func validateFields(t Template) error {
	seen := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		if f.ID == "" {
			return errors.New("field id is required")
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("duplicate field id %q", f.ID)
		}
		seen[f.ID] = struct{}{}

		switch f.Type {
		case FieldText, FieldTextarea, FieldCheckbox, FieldNumber:
			if len(f.Options) > 0 {
				return fmt.Errorf("field %q: options are only valid for select fields", f.ID)
			}
		case FieldSelect:
			if len(f.Options) == 0 {
				return fmt.Errorf("field %q: select field has no options", f.ID)
			}
		default:
			return fmt.Errorf("field %q: unknown field type %q", f.ID, f.Type)
		}
	}
	return nil
}

// Get returns the template with the given id.
func (r *Registry) Get(id string) (*Template, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	return t, nil
}

// List returns templates in registration order. An empty category returns the
// whole catalog.
func (r *Registry) List(category Category) []*Template {
	out := make([]*Template, 0, len(r.order))
	for _, id := range r.order {
		t := r.byID[id]
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}
