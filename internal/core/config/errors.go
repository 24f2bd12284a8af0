package config

import "fmt"

// ValidationError reports a top-level key that is not in the registry
// and is not the extension namespace.
type ValidationError struct {
	// Scope is the scope whose raw config contained the key, if known.
	Scope Scope
	// Key is the offending top-level key.
	Key string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("unknown configuration key %q in %s scope", e.Key, e.Scope)
	}
	return fmt.Sprintf("unknown configuration key %q", e.Key)
}

// ParseError reports a scope file whose contents are not valid JSON,
// or whose top level is not a JSON object.
type ParseError struct {
	// Scope is the scope whose file failed to parse.
	Scope Scope
	// Path is the file that failed to parse.
	Path string
	// Err is the underlying decoding error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s configuration (%s): %v", e.Scope, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// PathError reports an empty or malformed dotted path string.
type PathError struct {
	// Path is the offending path as supplied by the caller.
	Path string
	// Message describes what is wrong with it.
	Message string
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Message)
}

// IOError reports a scope file that could not be read or written for
// reasons other than absence.
type IOError struct {
	// Scope is the scope whose file was being accessed.
	Scope Scope
	// Op is the failing operation ("read", "write", "rename", "mkdir").
	Op string
	// Path is the file involved.
	Path string
	// Err is the underlying OS error.
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s configuration (%s): %v", e.Op, e.Scope, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
