package http

import (
	"errors"
	"strings"
	"testing"
)

func TestContractTypeValidation(t *testing.T) {
	type P struct {
		Type string `json:"type" validate:"omitempty,contract_type"`
	}
	cv := NewValidator()

	for _, s := range []string{"", "EXPRESS", "SALES"} {
		if err := cv.Validate(P{Type: s}); err != nil {
			t.Fatalf("expected %q valid, got err: %v", s, err)
		}
	}
	for _, s := range []string{"express", "LEASE", " SALES"} {
		err := cv.Validate(P{Type: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "type", "one of EXPRESS, SALES") {
			t.Fatalf("expected contract_type message for %q, got: %+v", s, fe)
		}
	}
}

func TestContractStatusValidation(t *testing.T) {
	type P struct {
		Status string `query:"status" validate:"omitempty,contract_status"`
	}
	cv := NewValidator()

	for _, s := range []string{"", "APPROVED", "DENIED"} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected %q valid, got err: %v", s, err)
		}
	}
	err := cv.Validate(P{Status: "PENDING"})
	if err == nil {
		t.Fatalf("expected error for PENDING")
	}
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "status", "one of APPROVED, DENIED") {
		t.Fatalf("expected contract_status message, got: %+v", fe)
	}
}

func TestRequestStructBounds(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(createContractReq{Name: strings.Repeat("x", 256), BusinessNumber: -1, Type: "SALES"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "name", "at most 255 characters") {
		t.Fatalf("missing max message for name: %+v", fe)
	}
	if !containsFieldMsg(fe, "businessNumber", "greater than or equal to 0") {
		t.Fatalf("missing gte message for businessNumber: %+v", fe)
	}

	if err := cv.Validate(updateContractReq{Name: "ok", BusinessNumber: 0}); err != nil {
		t.Fatalf("zero businessNumber must pass: %v", err)
	}
	if err := cv.Validate(updateContractReq{Name: "ok", BusinessNumber: -3}); err == nil {
		t.Fatalf("negative businessNumber on update must fail")
	}
}

func TestToFieldErrors_UnmappedTag(t *testing.T) {
	type P struct {
		Email string `json:"email" validate:"email"`
	}
	fe := ToFieldErrors(NewValidator().Validate(P{Email: "nope"}))
	if !containsFieldMsg(fe, "email", "email validation failed") {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}

func TestSummarize(t *testing.T) {
	got := summarize([]FieldError{
		{Field: "type", Message: "must be one of EXPRESS, SALES"},
		{Field: "name", Message: "must be at most 255 characters"},
	})
	if !strings.HasPrefix(got, "Invalid request: type must be one of EXPRESS, SALES; name") {
		t.Fatalf("summary = %q", got)
	}
}
