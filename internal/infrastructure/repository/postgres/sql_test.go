package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get pick: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to match")
	}
	if isNotFound(fmt.Errorf("boom")) {
		t.Fatalf("expected unrelated error not to match")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches named constraint", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: pickPlayerTeamConstraint}
		if !isUniqueViolation(err, pickPlayerTeamConstraint) {
			t.Fatalf("expected true for player/team unique violation")
		}
	})

	t.Run("ignores other constraint", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "picks_public_id_key"}
		if isUniqueViolation(err, pickPlayerTeamConstraint) {
			t.Fatalf("expected false for a different constraint")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Constraint: pickPlayerTeamConstraint}
		if isUniqueViolation(err, "") {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores non pq errors", func(t *testing.T) {
		if isUniqueViolation(fmt.Errorf("duplicate key"), "") {
			t.Fatalf("expected false for plain error")
		}
	})
}
