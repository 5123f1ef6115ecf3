package internal

import "github.com/pkg/errors"

// Misuse of the renderer is reported by panicking from wherever it is
// detected, and the public API recovers to convert to an error. This keeps
// error plumbing out of the recursive draw path.

// RenderError is a distinct type so that only panics raised by fatalf are
// recovered. Runtime errors and panics from inside a Surface propagate.
type RenderError struct {
	error
}

// Panic with a RenderError.
func fatalf(format string, args ...interface{}) {
	panic(RenderError{errors.Errorf(format, args...)})
}

func HandleRenderPanicRecover(r interface{}) error {
	if r != nil {
		if renderError, ok := r.(RenderError); ok {
			return renderError.error
		}
		panic(r)
	}
	return nil
}
