package laudo

import "github.com/shopspring/decimal"

// Submission carries the values of one report-creation attempt. It is
// transient: validated, assembled and discarded within a single request.
// Fields is keyed by template field id; values arrive as decoded JSON
// (string, bool or float64).
type Submission struct {
	PatientID       string
	RequiresPayment bool
	Price           decimal.Decimal
	Fields          map[string]any
}
