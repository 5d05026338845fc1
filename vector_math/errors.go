package vector_math

import (
	"errors"
	"fmt"
)

// Invalid input to any vector or matrix operation is a caller bug. Operations
// never return these, they panic with an *Error wrapping one of them.
var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrZeroMagnitude     = errors.New("zero magnitude")
	ErrZeroByZero        = errors.New("division of zero by zero")
	ErrZeroDivisor       = errors.New("remainder with a divisor of zero")
	ErrSwizzleLength     = errors.New("invalid swizzle length")
	ErrUnknownComponent  = errors.New("unknown component")
	ErrDimensionMismatch = errors.New("matrix dimension mismatch")
	ErrMatrixShape       = errors.New("invalid matrix shape")
)

// Error is the panic value of every failing operation in this package.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Recover runs f and returns the *Error it panicked with, if any. Panics that
// did not originate in this package are re-raised.
func Recover(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}
		err = e
	}()
	f()
	return nil
}
