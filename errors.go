package bitify

import "fmt"

// DecodeError reports a source image that could not be opened or
// decoded. It is fatal to the whole conversion; nothing is rendered.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError reports degenerate derived dimensions. It is raised
// before any sampling happens so an empty grid can never reach the
// rasterizer.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid output dimensions: " + e.Reason
}

// PersistenceError reports a failure to write the rasterized image:
// home directory resolution, directory creation, or the file write
// itself. Callers are expected to downgrade it to a warning since the
// terminal rendering has already succeeded by the time it can occur.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
