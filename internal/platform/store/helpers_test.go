package store

import (
	"context"
	"testing"
)

type fakeTag struct{ n int64 }

func (f fakeTag) String() string      { return "INSERT 0" }
func (f fakeTag) RowsAffected() int64 { return f.n }

type fakeRow struct{ v int }

func (r fakeRow) Scan(dest ...any) error { *(dest[0].(*int)) = r.v; return nil }

type fakeQ struct {
	affected int64
}

func (q fakeQ) Exec(context.Context, string, ...any) (CommandTag, error) {
	return fakeTag{q.affected}, nil
}
func (q fakeQ) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (q fakeQ) QueryRow(context.Context, string, ...any) Row        { return fakeRow{v: 42} }

func TestExecOne(t *testing.T) {
	ctx := context.Background()
	if err := ExecOne(ctx, fakeQ{affected: 1}, "UPDATE"); err != nil {
		t.Fatalf("one row: %v", err)
	}
	if err := ExecOne(ctx, fakeQ{affected: 10}, "UPDATE"); err == nil {
		t.Fatalf("ten rows should fail")
	}
}

func TestScalar(t *testing.T) {
	n, err := Scalar[int](context.Background(), fakeQ{}, "SELECT 42")
	if err != nil || n != 42 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}
}
