package apperr

import (
	"errors"
	"fmt"
)

// Error kinds reported by Kind.
const (
	KindLex               = "lex"
	KindParse             = "parse"
	KindUnknownIdentifier = "unknown_identifier"
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// LexError reports a character the tokenizer could not turn into a token.
type LexError struct {
	Offset  int
	Char    rune
	Message string
}

func (e *LexError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("lex error at offset %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("lex error at offset %d: %s %q", e.Offset, e.Message, e.Char)
}

func NewLex(offset int, ch rune, msg string) *LexError {
	return &LexError{Offset: offset, Char: ch, Message: msg}
}

// ParseError reports the construct the parser expected and what it found instead.
type ParseError struct {
	Offset   int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Expected)
	}
	return fmt.Sprintf("parse error at offset %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

func NewParse(offset int, expected, found string) *ParseError {
	return &ParseError{Offset: offset, Expected: expected, Found: found}
}

// UnknownIdentifierError reports a name that is neither a function nor a constant.
type UnknownIdentifierError struct {
	Offset int
	Name   string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier %q at offset %d", e.Name, e.Offset)
}

func NewUnknownIdentifier(offset int, name string) *UnknownIdentifierError {
	return &UnknownIdentifierError{Offset: offset, Name: name}
}

// Kind classifies err as one of the calculator error kinds, or "" when it is none of them.
func Kind(err error) string {
	var le *LexError
	var pe *ParseError
	var ue *UnknownIdentifierError

	switch {
	case errors.As(err, &le):
		return KindLex
	case errors.As(err, &pe):
		return KindParse
	case errors.As(err, &ue):
		return KindUnknownIdentifier
	default:
		return ""
	}
}

// Offset returns the input offset carried by a calculator error, or -1.
func Offset(err error) int {
	var le *LexError
	var pe *ParseError
	var ue *UnknownIdentifierError

	switch {
	case errors.As(err, &le):
		return le.Offset
	case errors.As(err, &pe):
		return pe.Offset
	case errors.As(err, &ue):
		return ue.Offset
	default:
		return -1
	}
}
