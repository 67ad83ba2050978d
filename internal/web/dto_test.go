package web

import (
	"testing"
)

func Test_loginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     loginRequest
		wantErr bool
	}{
		{
			name: "complete",
			req: loginRequest{
				Email:    "bob@co.com",
				Password: "pw123",
				Role:     "staff",
			},
			wantErr: false,
		},
		{
			name: "missing email",
			req: loginRequest{
				Password: "pw123",
				Role:     "staff",
			},
			wantErr: true,
		},
		{
			name: "missing password",
			req: loginRequest{
				Email: "bob@co.com",
				Role:  "staff",
			},
			wantErr: true,
		},
		{
			name: "missing role",
			req: loginRequest{
				Email:    "bob@co.com",
				Password: "pw123",
			},
			wantErr: true,
		},
		{
			name: "blank fields",
			req: loginRequest{
				Email:    "   ",
				Password: " ",
				Role:     "\t",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_createCustomer_Validate(t *testing.T) {
	tests := []struct {
		name     string
		customer createCustomer
		wantErr  bool
	}{
		{
			name: "complete",
			customer: createCustomer{
				Cname:  "ACME Ltd",
				Cphone: "555-0100",
			},
			wantErr: false,
		},
		{
			name: "missing name",
			customer: createCustomer{
				Cphone: "555-0100",
			},
			wantErr: true,
		},
		{
			name: "missing phone",
			customer: createCustomer{
				Cname: "ACME Ltd",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.customer.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
