package template

import (
	"errors"
	"testing"
)

func TestRegisterRejectsInvalidTemplates(t *testing.T) {
	tests := []struct {
		name     string
		template Template
	}{
		{
			name:     "empty id",
			template: Template{Name: "Sem ID"},
		},
		{
			name: "select without options",
			template: Template{
				ID:   "bad-select",
				Name: "Seleção",
				Fields: []Field{
					{ID: "choice", Label: "Escolha", Type: FieldSelect},
				},
			},
		},
		{
			name: "options on text field",
			template: Template{
				ID:   "bad-text",
				Name: "Texto",
				Fields: []Field{
					{ID: "notes", Label: "Notas", Type: FieldText, Options: []string{"A", "B"}},
				},
			},
		},
		{
			name: "duplicate field id",
			template: Template{
				ID:   "dup-field",
				Name: "Duplicado",
				Fields: []Field{
					{ID: "value", Label: "Valor", Type: FieldText},
					{ID: "value", Label: "Valor 2", Type: FieldText},
				},
			},
		},
		{
			name: "unknown field type",
			template: Template{
				ID:   "bad-type",
				Name: "Tipo",
				Fields: []Field{
					{ID: "value", Label: "Valor", Type: FieldType("date")},
				},
			},
		},
		{
			name: "empty field id",
			template: Template{
				ID:   "empty-field",
				Name: "Campo",
				Fields: []Field{
					{ID: "", Label: "Valor", Type: FieldText},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if err := r.Register(tt.template); err == nil {
				t.Fatalf("Register(%q) succeeded, want error", tt.template.ID)
			}
		})
	}
}

func TestRegisterRejectsDuplicateID(t *testing.T) {
	r := NewRegistry()
	tmpl := Template{ID: "exam", Name: "Exame"}

	if err := r.Register(tmpl); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	err := r.Register(tmpl)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("second Register error = %v, want ErrDuplicateID", err)
	}
}

func TestGetUnknownTemplate(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("Get error = %v, want ErrTemplateNotFound", err)
	}
}

func TestListPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	ids := []string{"c-exam", "a-exam", "b-exam"}
	for _, id := range ids {
		if err := r.Register(Template{ID: id, Name: id, Category: CategoryMedical}); err != nil {
			t.Fatalf("Register(%q) failed: %v", id, err)
		}
	}

	got := r.List("")
	if len(got) != len(ids) {
		t.Fatalf("List returned %d templates, want %d", len(got), len(ids))
	}
	for i, tmpl := range got {
		if tmpl.ID != ids[i] {
			t.Errorf("List[%d].ID = %q, want %q", i, tmpl.ID, ids[i])
		}
	}
}

func TestListFiltersByCategory(t *testing.T) {
	r, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	all := r.List("")
	if len(all) != 6 {
		t.Fatalf("List(\"\") returned %d templates, want 6", len(all))
	}

	medical := r.List(CategoryMedical)
	dental := r.List(CategoryDental)
	if len(medical) != 3 {
		t.Errorf("List(medical) returned %d templates, want 3", len(medical))
	}
	if len(dental) != 3 {
		t.Errorf("List(dental) returned %d templates, want 3", len(dental))
	}
	if len(medical)+len(dental) != len(all) {
		t.Errorf("category lists do not partition the catalog")
	}
}

func TestBuiltinCatalog(t *testing.T) {
	r, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}

	for _, id := range []string{"blood-test", "xray", "ecg", "dental-exam", "dental-xray", "orthodontic"} {
		tmpl, err := r.Get(id)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", id, err)
			continue
		}
		if len(tmpl.Fields) == 0 {
			t.Errorf("template %q has no fields", id)
		}
	}
}
