package errnotify

import "fmt"

// PanicError is the error handed to subscribers when a wrapped function panics.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
	// Stack is the stack of the panicking goroutine (nil when disabled by WithStack(false)).
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("errnotify: panic: %v", e.Value)
}

// Unwrap returns Value if it is an error, so errors.Is/As see through the panic.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
