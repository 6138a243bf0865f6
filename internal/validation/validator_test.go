// Tracksim - Content-Based Track Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracksim

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type seedRequest struct {
	SeedIDs []string `json:"seed_ids" validate:"max=3,dive,trackid"`
	Limit   *int     `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Mode    string   `json:"mode,omitempty" validate:"omitempty,oneof=mean max"`
}

func intPtr(v int) *int { return &v }

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input seedRequest
	}{
		{"empty request", seedRequest{}},
		{"ids and limit", seedRequest{SeedIDs: []string{"T1", "spotify:track:4uLU6hMCjMI75M1A2tKUQC"}, Limit: intPtr(10)}},
		{"boundary limit", seedRequest{Limit: intPtr(100)}},
		{"unicode id", seedRequest{SeedIDs: []string{"piste-été"}}},
		{"mode", seedRequest{Mode: "max"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     seedRequest
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "blank seed id",
			input:     seedRequest{SeedIDs: []string{"T1", "  "}},
			wantField: "seed_ids[1]",
			wantTag:   "trackid",
			wantMsg:   "seed_ids[1] must be a non-blank track id",
		},
		{
			name:      "control character in id",
			input:     seedRequest{SeedIDs: []string{"T\x001"}},
			wantField: "seed_ids[0]",
			wantTag:   "trackid",
		},
		{
			name:      "oversized id",
			input:     seedRequest{SeedIDs: []string{strings.Repeat("x", MaxTrackIDLength+1)}},
			wantField: "seed_ids[0]",
			wantTag:   "trackid",
		},
		{
			name:      "too many seeds",
			input:     seedRequest{SeedIDs: []string{"a", "b", "c", "d"}},
			wantField: "seed_ids",
			wantTag:   "max",
			wantMsg:   "seed_ids must be at most 3 items",
		},
		{
			name:      "limit zero",
			input:     seedRequest{Limit: intPtr(0)},
			wantField: "limit",
			wantTag:   "gte",
			wantMsg:   "limit must be greater than or equal to 1",
		},
		{
			name:      "limit too high",
			input:     seedRequest{Limit: intPtr(101)},
			wantField: "limit",
			wantTag:   "lte",
		},
		{
			name:      "bad mode",
			input:     seedRequest{Mode: "median"},
			wantField: "mode",
			wantTag:   "oneof",
			wantMsg:   "mode must be one of: mean max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() should return error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if tt.wantMsg != "" && !strings.HasPrefix(errs[0].Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want prefix %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

// ===================================================================================================
// APIError Conversion Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&seedRequest{Limit: intPtr(0)})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Details["field"] != "limit" {
		t.Errorf("Details[field] = %v, want limit", apiErr.Details["field"])
	}
	if apiErr.Details["tag"] != "gte" {
		t.Errorf("Details[tag] = %v, want gte", apiErr.Details["tag"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&seedRequest{SeedIDs: []string{""}, Limit: intPtr(500)})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("got %d field errors, want 2", len(fields))
	}
	if !strings.Contains(apiErr.Message, "; ") {
		t.Errorf("Message = %q, want joined messages", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	t.Parallel()

	verr := &RequestValidationError{}
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if apiErr := verr.ToAPIError(); apiErr.Code != ErrorCode || apiErr.Details != nil {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct("not a struct")
	if verr == nil {
		t.Fatal("expected error for non-struct input")
	}
	if got := verr.Errors()[0].Field(); got != "unknown" {
		t.Errorf("Field() = %q, want unknown", got)
	}
}
