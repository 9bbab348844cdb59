package laudo

import (
	"context"
	"errors"
	"testing"

	"github.com/laudohub/laudohub-api/internal/domain/entity"
	"github.com/laudohub/laudohub-api/internal/template"

	"github.com/google/uuid"
)

type stubLookup struct {
	patient *entity.Patient
	err     error
}

func (s stubLookup) FindPatient(ctx context.Context, id string) (*entity.Patient, error) {
	return s.patient, s.err
}

func TestAssembleBuildsTitleAndBody(t *testing.T) {
	tmpl := bloodTestTemplate()
	lookup := stubLookup{patient: &entity.Patient{ID: uuid.New(), Name: "Maria Silva"}}

	got := Assemble(context.Background(), tmpl, Submission{
		PatientID: "any",
		Fields: map[string]any{
			"hemoglobin": "14.5 g/dL",
			"glucose":    "95 mg/dL",
		},
	}, lookup)

	if got.Title != "Exame de Sangue - Maria Silva" {
		t.Errorf("Title = %q", got.Title)
	}
	wantBody := "Hemoglobina: 14.5 g/dL\n\nGlicose: 95 mg/dL"
	if got.Body != wantBody {
		t.Errorf("Body = %q, want %q", got.Body, wantBody)
	}
	if got.Warning != "" {
		t.Errorf("unexpected warning %q", got.Warning)
	}
}

func TestAssembleSkipsEmptyValues(t *testing.T) {
	tmpl := bloodTestTemplate()
	lookup := stubLookup{patient: &entity.Patient{Name: "João"}}

	got := Assemble(context.Background(), tmpl, Submission{
		PatientID: "any",
		Fields: map[string]any{
			"hemoglobin":   "14.5 g/dL",
			"glucose":      "   ",
			"cholesterol":  "",
			"observations": nil,
		},
	}, lookup)

	if got.Body != "Hemoglobina: 14.5 g/dL" {
		t.Errorf("Body = %q, want only the hemoglobin line", got.Body)
	}
}

func TestAssembleFollowsFieldOrder(t *testing.T) {
	tmpl := bloodTestTemplate()
	lookup := stubLookup{patient: &entity.Patient{Name: "Ana"}}
	sub := Submission{
		PatientID: "any",
		Fields: map[string]any{
			"observations": "Paciente em jejum",
			"glucose":      "95 mg/dL",
			"hemoglobin":   "14.5 g/dL",
		},
	}

	want := "Hemoglobina: 14.5 g/dL\n\nGlicose: 95 mg/dL\n\nObservações: Paciente em jejum"
	for i := 0; i < 5; i++ {
		got := Assemble(context.Background(), tmpl, sub, lookup)
		if got.Body != want {
			t.Fatalf("iteration %d: Body = %q, want %q", i, got.Body, want)
		}
	}
}

func TestAssembleRendersTypedValues(t *testing.T) {
	tmpl := &template.Template{
		ID:   "typed",
		Name: "Tipado",
		Fields: []template.Field{
			{ID: "frequency", Label: "Frequência", Type: template.FieldNumber},
			{ID: "zero", Label: "Zero", Type: template.FieldNumber},
			{ID: "urgent", Label: "Urgente", Type: template.FieldCheckbox},
			{ID: "routine", Label: "Rotina", Type: template.FieldCheckbox},
		},
	}
	lookup := stubLookup{patient: &entity.Patient{Name: "Ana"}}

	got := Assemble(context.Background(), tmpl, Submission{
		PatientID: "any",
		Fields: map[string]any{
			"frequency": 72.5,
			"zero":      0.0,
			"urgent":    true,
			"routine":   false,
		},
	}, lookup)

	// Zero is a submitted value and stays; false checkboxes are omitted.
	want := "Frequência: 72.5\n\nZero: 0\n\nUrgente: Sim"
	if got.Body != want {
		t.Errorf("Body = %q, want %q", got.Body, want)
	}
}

func TestAssemblePatientLookupMiss(t *testing.T) {
	tmpl := bloodTestTemplate()

	got := Assemble(context.Background(), tmpl, Submission{
		PatientID: "unknown-id",
		Fields:    map[string]any{"hemoglobin": "14.5 g/dL", "glucose": "95 mg/dL"},
	}, stubLookup{})

	if got.Title != "Exame de Sangue - "+PatientNamePlaceholder {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Warning == "" {
		t.Error("expected a warning on lookup miss")
	}
	if got.Body == "" {
		t.Error("body should still be assembled on lookup miss")
	}
}

func TestAssemblePatientLookupError(t *testing.T) {
	tmpl := bloodTestTemplate()
	lookup := stubLookup{err: errors.New("connection refused")}

	got := Assemble(context.Background(), tmpl, Submission{
		PatientID: "any",
		Fields:    map[string]any{"hemoglobin": "14.5 g/dL", "glucose": "95 mg/dL"},
	}, lookup)

	if got.Warning == "" {
		t.Error("expected a warning on lookup error")
	}
	if got.Title != "Exame de Sangue - "+PatientNamePlaceholder {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestDecideStatus(t *testing.T) {
	tests := []struct {
		name            string
		requiresPayment bool
		want            entity.ReportStatus
	}{
		{"payment required", true, entity.ReportStatusPendingPayment},
		{"no payment", false, entity.ReportStatusReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecideStatus(tt.requiresPayment); got != tt.want {
				t.Errorf("DecideStatus(%v) = %q, want %q", tt.requiresPayment, got, tt.want)
			}
		})
	}
}
