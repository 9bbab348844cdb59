package laudo

import (
	"testing"

	"github.com/laudohub/laudohub-api/internal/template"

	"github.com/shopspring/decimal"
)

func bloodTestTemplate() *template.Template {
	return &template.Template{
		ID:   "blood-test",
		Name: "Exame de Sangue",
		Fields: []template.Field{
			{ID: "hemoglobin", Label: "Hemoglobina", Type: template.FieldText, Required: true},
			{ID: "glucose", Label: "Glicose", Type: template.FieldText, Required: true},
			{ID: "cholesterol", Label: "Colesterol Total", Type: template.FieldText},
			{ID: "observations", Label: "Observações", Type: template.FieldTextarea},
		},
	}
}

func ecgTemplate() *template.Template {
	return &template.Template{
		ID:   "ecg",
		Name: "Eletrocardiograma",
		Fields: []template.Field{
			{ID: "rhythm", Label: "Ritmo", Type: template.FieldSelect, Required: true, Options: []string{"Sinusal", "Fibrilação Atrial"}},
			{ID: "frequency", Label: "Frequência (bpm)", Type: template.FieldNumber, Required: true},
			{ID: "urgent", Label: "Urgente", Type: template.FieldCheckbox},
		},
	}
}

func TestValidateAcceptsCompleteSubmission(t *testing.T) {
	schema := DeriveSchema(bloodTestTemplate())

	errs := schema.Validate(Submission{
		PatientID: "9b9f2e91-7d44-4f7c-8f4b-0a9c2f6b7f10",
		Fields: map[string]any{
			"hemoglobin": "14.5 g/dL",
			"glucose":    "95 mg/dL",
		},
	})
	if errs != nil {
		t.Fatalf("Validate returned errors for valid submission: %v", errs)
	}
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	schema := DeriveSchema(bloodTestTemplate())

	errs := schema.Validate(Submission{
		PatientID: "",
		Price:     decimal.NewFromInt(-10),
		Fields:    map[string]any{},
	})
	if errs == nil {
		t.Fatal("Validate returned nil for invalid submission")
	}

	for _, field := range []string{"patientId", "price", "hemoglobin", "glucose"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing error for field %q, got %v", field, errs)
		}
	}
	if _, ok := errs["cholesterol"]; ok {
		t.Errorf("optional field cholesterol should not error when absent")
	}
}

func TestValidateFieldRules(t *testing.T) {
	schema := DeriveSchema(ecgTemplate())

	tests := []struct {
		name      string
		fields    map[string]any
		wantField string
	}{
		{
			name:      "select outside options",
			fields:    map[string]any{"rhythm": "Taquicardia", "frequency": 70.0},
			wantField: "rhythm",
		},
		{
			name:      "required text blank after trim",
			fields:    map[string]any{"rhythm": "   ", "frequency": 70.0},
			wantField: "rhythm",
		},
		{
			name:      "number as string",
			fields:    map[string]any{"rhythm": "Sinusal", "frequency": "70"},
			wantField: "frequency",
		},
		{
			name:      "required number absent",
			fields:    map[string]any{"rhythm": "Sinusal"},
			wantField: "frequency",
		},
		{
			name:      "checkbox as string",
			fields:    map[string]any{"rhythm": "Sinusal", "frequency": 70.0, "urgent": "sim"},
			wantField: "urgent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := schema.Validate(Submission{PatientID: "some-patient", Fields: tt.fields})
			if errs == nil {
				t.Fatal("Validate returned nil, want error")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("missing error for field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateZeroIsValidNumber(t *testing.T) {
	schema := DeriveSchema(ecgTemplate())

	errs := schema.Validate(Submission{
		PatientID: "some-patient",
		Fields:    map[string]any{"rhythm": "Sinusal", "frequency": 0.0},
	})
	if errs != nil {
		t.Fatalf("Validate rejected zero for a number field: %v", errs)
	}
}

func TestValidateCheckboxAbsenceIsFalse(t *testing.T) {
	schema := DeriveSchema(ecgTemplate())

	errs := schema.Validate(Submission{
		PatientID: "some-patient",
		Fields:    map[string]any{"rhythm": "Sinusal", "frequency": 72.0},
	})
	if errs != nil {
		t.Fatalf("Validate errored on absent checkbox: %v", errs)
	}
}

func TestDeriveSchemaIsDeterministic(t *testing.T) {
	tmpl := bloodTestTemplate()
	sub := Submission{PatientID: "", Fields: map[string]any{"glucose": "95 mg/dL"}}

	first := DeriveSchema(tmpl).Validate(sub)
	second := DeriveSchema(tmpl).Validate(sub)

	if len(first) != len(second) {
		t.Fatalf("validation outcomes differ between derivations: %v vs %v", first, second)
	}
	for field, msg := range first {
		if second[field] != msg {
			t.Errorf("field %q: %q vs %q", field, msg, second[field])
		}
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{"glucose": "Glicose é obrigatório", "patientId": "Selecione um paciente"}

	want := "validation failed for fields: glucose, patientId"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}
