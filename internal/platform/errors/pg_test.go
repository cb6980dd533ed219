package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) *pgconn.PgError { return &pgconn.PgError{Code: code} }

func TestDBErrorCode(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeConflict},
		{"23502", ErrorCodeValidation},
		{"22003", ErrorCodeInvalidArgument},
		{"57P03", ErrorCodeUnavailable},
		{"42P01", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(fmt.Errorf("insert: %w", pgErr(c.code)))
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v,%v want %v", c.code, got, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("non-pg error should report ok=false")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil should stay nil")
	}
	err := FromPostgresf(pgErr("23505"), "upsert %s", "article_metrics")
	if !IsCode(err, ErrorCodeConflict) {
		t.Fatalf("code = %v", CodeOf(err))
	}
	if !IsUndefinedTable(FromPostgres(pgErr("42P01"), "insert")) {
		t.Fatalf("undefined table not detected through wrap")
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"serialization", pgErr("40001"), true},
		{"unique", pgErr("23505"), false},
		{"text deadlock", stderrs.New("ERROR: deadlock detected"), true},
		{"plain", stderrs.New("boom"), false},
	}
	for _, c := range cases {
		if got := IsRetryable(c.err); got != c.want {
			t.Fatalf("%s: IsRetryable = %v, want %v", c.name, got, c.want)
		}
	}
}
