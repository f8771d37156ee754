package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/wicketline/cricket-stats/internal/domain/performance"
	"github.com/wicketline/cricket-stats/internal/domain/team"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches sql.ErrNoRows", func(t *testing.T) {
		if !isNotFound(sql.ErrNoRows) {
			t.Fatalf("expected true for sql.ErrNoRows")
		}
	})

	t.Run("matches wrapped sql.ErrNoRows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(errors.New("pq: relation teams does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestMarkConstraintError(t *testing.T) {
	t.Run("unique violation carries the unique sentinel", func(t *testing.T) {
		err := markConstraintError(&pq.Error{Code: pqUniqueViolation}, performance.ErrDuplicate, nil)
		if !errors.Is(err, performance.ErrDuplicate) {
			t.Fatalf("expected performance.ErrDuplicate, got %v", err)
		}
	})

	t.Run("foreign key violation carries the fk sentinel", func(t *testing.T) {
		err := markConstraintError(&pq.Error{Code: pqForeignKeyViolation}, nil, team.ErrInUse)
		if !errors.Is(err, team.ErrInUse) {
			t.Fatalf("expected team.ErrInUse, got %v", err)
		}
	})

	t.Run("passes through other driver errors", func(t *testing.T) {
		base := &pq.Error{Code: "42P01"}
		err := markConstraintError(base, performance.ErrDuplicate, team.ErrInUse)
		if errors.Is(err, performance.ErrDuplicate) || errors.Is(err, team.ErrInUse) {
			t.Fatalf("unexpected sentinel classification: %v", err)
		}
	})
}
