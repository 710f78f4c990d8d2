package yamlcore

import "fmt"

// ParseError carries enough location context for a human to find the
// offending byte without reproducing the parse. Every parse failure in this
// package returns one of these rather than a bare error or a panic; errors
// from Decode's binding step (type mismatches, a non-pointer target, more
// than one document) are plain errors.
type ParseError struct {
	Line, Column int
	ByteOffset   int
	Message      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("yaml: %d:%d (byte %d): %s", e.Line, e.Column, e.ByteOffset, e.Message)
}

func newParseError(line, col, offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Column: col, ByteOffset: offset, Message: fmt.Sprintf(format, args...)}
}
