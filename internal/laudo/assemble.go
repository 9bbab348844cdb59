package laudo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/laudohub/laudohub-api/internal/domain/entity"
	"github.com/laudohub/laudohub-api/internal/template"
)

// PatientNamePlaceholder is used in the title when the patient lookup misses.
// Lookup failure is non-fatal: the report is still assembled and a warning is
// attached for the caller to surface.
const PatientNamePlaceholder = "Paciente não encontrado"

// PatientLookup resolves a patient id to the patient record. A (nil, nil)
// result means not found.
type PatientLookup interface {
	FindPatient(ctx context.Context, id string) (*entity.Patient, error)
}

// Assembly is the output of assembling one submission against a template.
type Assembly struct {
	Title   string
	Body    string
	Warning string
}

// Assemble builds the report title and body. The title is
// "<template name> - <patient name>"; the body lists "Label: value" lines in
// the template's declared field order, blank-line separated, with empty values
// (after trimming) silently omitted. Output is byte-deterministic for a given
// template, submission and patient snapshot; timestamps belong to the store,
// not the assembler.
func Assemble(ctx context.Context, t *template.Template, sub Submission, lookup PatientLookup) Assembly {
	var out Assembly

	patientName := PatientNamePlaceholder
	patient, err := lookup.FindPatient(ctx, sub.PatientID)
	switch {
	case err != nil:
		out.Warning = fmt.Sprintf("falha ao buscar paciente %s: %v", sub.PatientID, err)
	case patient == nil:
		out.Warning = fmt.Sprintf("paciente %s não encontrado", sub.PatientID)
	default:
		patientName = patient.Name
	}

	out.Title = fmt.Sprintf("%s - %s", t.Name, patientName)

	lines := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		value := renderValue(sub.Fields[f.ID])
		if value == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", f.Label, value))
	}
	out.Body = strings.Join(lines, "\n\n")

	return out
}

// renderValue formats a submitted value for the report body. An empty string
// marks the field as absent.
func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		if v {
			return "Sim"
		}
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
