package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestContract_Equal_ComparesIDOnly(t *testing.T) {
	approved := StatusApproved
	a := &Contract{ID: 7, Name: "a", Type: TypeExpress, Status: &approved}
	b := &Contract{ID: 7, Name: "b", Type: TypeSales}
	c := &Contract{ID: 8, Name: "a", Type: TypeExpress, Status: &approved}

	if !a.Equal(b) {
		t.Fatalf("same id with different fields should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("different ids should not be equal")
	}
	if a.Equal(nil) {
		t.Fatalf("non-nil vs nil should not be equal")
	}
	var n *Contract
	if !n.Equal(nil) {
		t.Fatalf("nil vs nil should be equal")
	}
}

func TestType_Valid(t *testing.T) {
	for _, v := range []Type{TypeExpress, TypeSales} {
		if !v.Valid() {
			t.Fatalf("%q should be valid", v)
		}
	}
	for _, v := range []Type{"", "express", "LEASE"} {
		if v.Valid() {
			t.Fatalf("%q should be invalid", v)
		}
	}
}

func TestStatus_Valid(t *testing.T) {
	if !StatusApproved.Valid() || !StatusDenied.Valid() {
		t.Fatalf("APPROVED and DENIED must be valid")
	}
	if Status("PENDING").Valid() || Status("").Valid() {
		t.Fatalf("unknown statuses must be invalid")
	}
}

func TestHasDecision(t *testing.T) {
	c := &Contract{}
	if c.HasDecision() {
		t.Fatalf("unset status has no decision")
	}
	denied := StatusDenied
	c.Status = &denied
	if !c.HasDecision() {
		t.Fatalf("DENIED is a decision")
	}
}

func TestErrorKinds(t *testing.T) {
	err := InvalidArgument("Contract does not exist with id: %d", 42)
	if err.Error() != "Contract does not exist with id: 42" {
		t.Fatalf("message = %q", err.Error())
	}
	wrapped := fmt.Errorf("update: %w", err)
	if !IsInvalidArgument(wrapped) {
		t.Fatalf("wrapped InvalidArgument not detected")
	}
	if IsNotFound(wrapped) {
		t.Fatalf("InvalidArgument must not be NotFound")
	}

	if !IsNotFound(NotFound("Contract does not exist.")) {
		t.Fatalf("NotFound kind not detected")
	}
	if !IsNotFound(fmt.Errorf("find: %w", ErrNotFound)) {
		t.Fatalf("ErrNotFound sentinel not detected")
	}
	if IsInvalidArgument(errors.New("boom")) || IsNotFound(errors.New("boom")) {
		t.Fatalf("plain errors carry no kind")
	}
}

func TestContract_JSONFields(t *testing.T) {
	now := time.Now()
	b, err := json.Marshal(Contract{ID: 1, Name: "n", Type: TypeSales, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	want := []string{"id", "name", "businessNumber", "amountRequested", "type", "status", "activationDate"}
	if len(m) != len(want) {
		t.Fatalf("fields = %v, want %v", m, want)
	}
	for _, k := range want {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing %q in %s", k, b)
		}
	}
}
