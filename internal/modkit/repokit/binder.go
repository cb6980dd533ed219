package repokit

// Binder produces a repository bound to a Queryer, either the pool or a live transaction
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a constructor to Binder
type BindFunc[T any] func(Queryer) T

// Bind implements Binder
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds b to q and panics on a nil Queryer
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}
