package validator_test

import (
	"restate/shared/failure"
	"restate/shared/validator"
	"testing"
)

type bookRequest struct {
	UserID     string `json:"userId" validate:"required"`
	PropertyID string `json:"propertyId" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     bookRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     bookRequest{UserID: "user-1", PropertyID: "prop-1"},
			wantErr: false,
		},
		{
			name:    "missing user id",
			req:     bookRequest{PropertyID: "prop-1"},
			wantErr: true,
		},
		{
			name:    "missing property id",
			req:     bookRequest{UserID: "user-1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("expected no validation error, got %v", err)
			}

			if tt.wantErr && failure.GetCode(err) != 400 {
				t.Errorf("expected bad-request failure, got code %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected error for empty required var")
	}

	if err := validator.ValidateVar("booking-1", "required"); err != nil {
		t.Errorf("expected no error for non-empty required var, got %v", err)
	}
}
