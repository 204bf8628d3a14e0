// Package option provides a small generic functional-options helper shared
// by the buffer and value packages' constructors: buffer.New's
// buffer.WithPool and value.NewMap's value.WithFirstWriteWins are both
// built from Option[T] instantiated at their own config type.
package option

// Option configures a construction-time config value of type T, such as
// buffer's *config or value's *mapConfig.
type Option[T any] interface {
	apply(T) error
}

// Func wraps a function as an Option[T].
type Func[T any] struct {
	applyFunc func(T) error
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New builds an Option[T] from a function that may reject the config it's
// given (e.g. a WithChunkSize option rejecting a non-positive size).
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs opts against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError builds an Option[T] from a function that can't fail, such as
// buffer.WithPool or value.WithFirstWriteWins.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
