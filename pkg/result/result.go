// Package result defines the single success/failure union returned by every
// remote-backed operation. The UI layer branches on Ok, reads Value on
// success and Message on failure; it never inspects raw transport errors.
package result

// FallbackMessage is the display text used when a failure is constructed
// without one. Failures must always carry something the UI can show.
const FallbackMessage = "Ocurrió un error inesperado. Intenta de nuevo."

// Result holds exactly one of a success payload or a failure. Construct
// with Ok or Fail; the zero value is a failure with no message.
type Result[T any] struct {
	value T
	err   error
	msg   string
	ok    bool
}

// Ok wraps a success payload. The payload is always usable; operations never
// produce Ok with a missing body (an empty 2xx maps to Fail instead).
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail wraps an underlying cause plus the message shown to the user. The
// cause is kept for logging and assertions only. An empty message falls back
// to FallbackMessage so the caller can always display something.
func Fail[T any](cause error, message string) Result[T] {
	if message == "" {
		message = FallbackMessage
	}
	return Result[T]{err: cause, msg: message}
}

// Ok reports whether the result carries a success payload.
func (r Result[T]) Ok() bool { return r.ok }

// Value returns the success payload. Only meaningful when Ok is true.
func (r Result[T]) Value() T { return r.value }

// Err returns the underlying cause of a failure, nil on success.
func (r Result[T]) Err() error { return r.err }

// Message returns the user-facing failure text, empty on success.
func (r Result[T]) Message() string { return r.msg }

// Forward re-wraps a failure under a different payload type, keeping cause
// and message. It is how a multi-step operation propagates an inner failure.
func Forward[T, U any](r Result[T]) Result[U] {
	return Fail[U](r.err, r.msg)
}

// Map converts a success payload with f, passing failures through unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return Forward[T, U](r)
	}
	return Ok(f(r.value))
}
