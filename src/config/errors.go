package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ParseError reports a syntactically malformed document.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Msg)
	}
	return "parse error: " + e.Msg
}

// SchemaError reports an unknown key, or a wrong type or value for a known
// key. Key is the dotted path when it is known.
type SchemaError struct {
	Key    string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Key == "" {
		return "schema error: " + e.Reason
	}
	return fmt.Sprintf("schema error: %s: %s", e.Key, e.Reason)
}

func schemaErrorf(key, format string, args ...any) *SchemaError {
	return &SchemaError{Key: key, Reason: fmt.Sprintf(format, args...)}
}

func asParseError(err error) error {
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return &ParseError{Line: row, Column: col, Msg: derr.Error()}
	}
	return &ParseError{Msg: err.Error()}
}

// asSchemaError maps strict-decoding failures onto SchemaError. Syntax was
// already vetted by the shapeless pass, so whatever the strict decoder
// rejects is an unknown key or a type mismatch.
func asSchemaError(err error) error {
	var missing *toml.StrictMissingError
	if errors.As(err, &missing) {
		if len(missing.Errors) > 0 {
			key := strings.Join([]string(missing.Errors[0].Key()), ".")
			return &SchemaError{Key: key, Reason: "unknown key"}
		}
		return &SchemaError{Reason: "unknown key"}
	}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		return &SchemaError{
			Key:    strings.Join([]string(derr.Key()), "."),
			Reason: derr.Error(),
		}
	}
	return &SchemaError{Reason: err.Error()}
}
