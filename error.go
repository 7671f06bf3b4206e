package gojsonpath

import "fmt"

// ParseError represents a query parse error.
type ParseError struct {
	Query string
	Err   error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("invalid query: %q: %s", err.Query, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
