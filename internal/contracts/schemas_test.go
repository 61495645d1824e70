package contracts

import "testing"

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"schemas/enquiries/contact/v1.json", "ContactEnquiry/1.0.0"},
		{"schemas/enquiries/property-appraisal/v1.json", "PropertyAppraisalEnquiry/1.0.0"},
		{"schemas/enquiries/maintenance-request/v1.json", "MaintenanceRequestEnquiry/1.0.0"},
		{"schemas/enquiries/bad.json", ""},
	}
	for _, tt := range tests {
		if got := generateKeyFromPath(tt.in); got != tt.want {
			t.Errorf("generateKeyFromPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateEnquiry(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		body    string
		wantErr bool
	}{
		{
			name: "valid contact",
			typ:  "ContactEnquiry",
			body: `{"name":"Jo Citizen","email":"jo@example.com","message":"Please call me"}`,
		},
		{
			name:    "contact missing message",
			typ:     "ContactEnquiry",
			body:    `{"name":"Jo","email":"jo@example.com"}`,
			wantErr: true,
		},
		{
			name:    "contact unknown field",
			typ:     "ContactEnquiry",
			body:    `{"name":"Jo","email":"jo@example.com","message":"hi","admin":true}`,
			wantErr: true,
		},
		{
			name: "valid appraisal",
			typ:  "PropertyAppraisalEnquiry",
			body: `{"name":"Jo","email":"jo@example.com","propertyAddress":"1 Wood St, Mackay","propertyType":"Residential"}`,
		},
		{
			name:    "appraisal bad property type",
			typ:     "PropertyAppraisalEnquiry",
			body:    `{"name":"Jo","email":"jo@example.com","propertyAddress":"1 Wood St","propertyType":"Castle"}`,
			wantErr: true,
		},
		{
			name: "valid maintenance",
			typ:  "MaintenanceRequestEnquiry",
			body: `{"name":"Jo","email":"jo@example.com","propertyAddress":"2 Wood St","message":"Leaking tap","urgency":"high"}`,
		},
		{
			name:    "not json",
			typ:     "ContactEnquiry",
			body:    `{{{`,
			wantErr: true,
		},
		{
			name:    "unknown schema",
			typ:     "NopeEnquiry",
			body:    `{}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEnquiry(tt.typ, "1.0.0", []byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEnquiry error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
