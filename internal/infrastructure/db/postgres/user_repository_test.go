package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "users_email_key"}
	if !isUniqueViolation(dup) {
		t.Fatalf("expected unique violation to be detected")
	}
	if !isUniqueViolation(fmt.Errorf("insert user: %w", dup)) {
		t.Fatalf("expected wrapped unique violation to be detected")
	}

	other := &pq.Error{Code: "23503"} // foreign_key_violation
	if isUniqueViolation(other) {
		t.Fatalf("foreign key violation misread as unique violation")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Fatalf("plain error misread as unique violation")
	}
}
