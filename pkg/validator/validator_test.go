package validator

import "testing"

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=3,max=80"`
	Phone string `validate:"omitempty,e164"`
}

func TestValidate(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name    string
		req     sampleRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  sampleRequest{Email: "dr@example.com", Name: "Maria Silva", Phone: "+5511999990000"},
		},
		{
			name: "valid without optional phone",
			req:  sampleRequest{Email: "dr@example.com", Name: "Maria Silva"},
		},
		{
			name:    "bad email",
			req:     sampleRequest{Email: "not-an-email", Name: "Maria Silva"},
			wantErr: true,
		},
		{
			name:    "name too short",
			req:     sampleRequest{Email: "dr@example.com", Name: "Ma"},
			wantErr: true,
		},
		{
			name:    "phone not e164",
			req:     sampleRequest{Email: "dr@example.com", Name: "Maria Silva", Phone: "11 99999-0000"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "bad", Name: ""})
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Email"] != "Email must be a valid email address" {
		t.Errorf("Email message = %q", formatted["Email"])
	}
	if formatted["Name"] != "Name is required" {
		t.Errorf("Name message = %q", formatted["Name"])
	}
}
